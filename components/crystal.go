package components

import "github.com/yohamta/donburi"

// CrystalData is a dash recharge pickup. Timer is only non-zero while Used.
type CrystalData struct {
	X, Y  float64 // center
	Used  bool
	Timer float64
}

var Crystal = donburi.NewComponentType[CrystalData]()
