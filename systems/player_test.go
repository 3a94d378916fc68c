package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/gamemath"
)

func TestJumpFromGround(t *testing.T) {
	w := newTestWorld(t, room)
	settle(t, w)
	got := recordEvents(w)
	p := getPlayer(t, w)

	press(w, "Space")
	step(w, testDT)

	// Launch sets -JumpSpeed, then held-jump gravity integrates the same frame.
	want := -cfg.Physics.JumpSpeed + cfg.Physics.Gravity*cfg.Physics.JumpHoldGravityScale*testDT
	if p.physics.SpeedY != want {
		t.Errorf("SpeedY = %v, expected %v", p.physics.SpeedY, want)
	}
	if p.physics.OnGround {
		t.Error("still grounded after jumping")
	}
	if p.data.Coyote != 0 || p.data.JumpBuffer != 0 {
		t.Errorf("timers = (%v, %v), expected both cleared", p.data.Coyote, p.data.JumpBuffer)
	}
	if countEvents(*got, EventJump) != 1 {
		t.Errorf("jump events = %d, expected 1", countEvents(*got, EventJump))
	}
}

func TestHeldJumpGoesHigher(t *testing.T) {
	peak := func(hold bool) float64 {
		w := newTestWorld(t, room)
		settle(t, w)
		p := getPlayer(t, w)
		press(w, "Space")
		top := p.obj.Y
		for i := 0; i < 40; i++ {
			step(w, testDT)
			if i == 0 && !hold {
				release(w, "Space")
			}
			top = math.Min(top, p.obj.Y)
		}
		return top
	}

	if held, tapped := peak(true), peak(false); held >= tapped {
		t.Errorf("held peak %v not above tapped peak %v", held, tapped)
	}
}

func TestCoyoteWindow(t *testing.T) {
	tests := []struct {
		name      string
		airFrames int
		wantJump  bool
	}{
		{"inside window", 3, true},
		{"after window", 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, room)
			settle(t, w)
			got := recordEvents(w)
			p := getPlayer(t, w)

			// Leave the ground: the first airborne frame still sees the
			// previous contact and refills coyote time.
			p.obj.Y = 40
			for i := 0; i < tt.airFrames; i++ {
				step(w, testDT)
			}
			if p.physics.OnGround {
				t.Fatal("player landed during the test")
			}

			press(w, "Space")
			step(w, testDT)

			if jumped := countEvents(*got, EventJump) == 1; jumped != tt.wantJump {
				t.Errorf("jumped = %v, expected %v (coyote %v)", jumped, tt.wantJump, p.data.Coyote)
			}
		})
	}
}

func TestJumpBufferFiresOnLanding(t *testing.T) {
	w := newTestWorld(t, room)
	got := recordEvents(w)
	p := getPlayer(t, w)
	lift(w, p, 18, 94)

	press(w, "Space")
	landedAt, jumpedAt := -1, -1
	for frame := 0; frame < 10 && jumpedAt < 0; frame++ {
		before := len(*got)
		step(w, testDT)
		if countEvents((*got)[before:], EventJump) > 0 {
			jumpedAt = frame
		}
		if landedAt < 0 && p.physics.OnGround {
			landedAt = frame
		}
	}

	if landedAt < 0 {
		t.Fatal("player never landed")
	}
	if jumpedAt != landedAt+1 {
		t.Errorf("jump fired on frame %d, expected %d (first update after contact on %d)", jumpedAt, landedAt+1, landedAt)
	}
}

func TestExpiredBufferDoesNotJump(t *testing.T) {
	w := newTestWorld(t, room)
	got := recordEvents(w)
	p := getPlayer(t, w)
	lift(w, p, 18, 40)

	press(w, "Space")
	for i := 0; i < 40; i++ {
		step(w, testDT)
	}
	if !p.physics.OnGround {
		t.Fatal("player never landed")
	}
	if n := countEvents(*got, EventJump); n != 0 {
		t.Errorf("jump events = %d, expected buffered press to expire in the air", n)
	}
}

func TestDashFallsBackToFacing(t *testing.T) {
	tests := []struct {
		name   string
		facing float64
		wantX  float64
	}{
		{"facing right", cfg.DirectionRight, 1},
		{"facing left", cfg.DirectionLeft, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, room)
			p := getPlayer(t, w)
			lift(w, p, 90, 20)
			p.data.Facing = tt.facing

			press(w, "KeyX")
			step(w, testDT)

			if p.data.DashDir.X != tt.wantX || p.data.DashDir.Y != 0 {
				t.Errorf("DashDir = %v, expected (%v, 0)", p.data.DashDir, tt.wantX)
			}
			if p.data.Dashes != 0 {
				t.Errorf("Dashes = %d, expected 0", p.data.Dashes)
			}
			if !p.data.Dashing() {
				t.Error("dash not active")
			}
		})
	}
}

func TestDashCannotRetriggerInAir(t *testing.T) {
	w := newTestWorld(t, room)
	got := recordEvents(w)
	p := getPlayer(t, w)
	lift(w, p, 40, 20)

	press(w, "KeyX")
	step(w, testDT)
	release(w, "KeyX")
	for i := 0; i < 10; i++ {
		step(w, testDT)
	}
	if p.data.Dashing() {
		t.Fatal("dash outlived its timer")
	}

	press(w, "KeyX")
	step(w, testDT)

	if p.physics.OnGround {
		t.Fatal("player landed during the test")
	}
	if p.data.Dashing() || p.data.Dashes != 0 {
		t.Errorf("dash retriggered without a charge (dashes %d)", p.data.Dashes)
	}
	if n := countEvents(*got, EventDash); n != 1 {
		t.Errorf("dash events = %d, expected 1", n)
	}
}

func TestDashDirectionIsNormalized(t *testing.T) {
	w := newTestWorld(t, room)
	p := getPlayer(t, w)
	lift(w, p, 90, 50)

	press(w, "ArrowRight")
	press(w, "ArrowUp")
	press(w, "KeyX")
	step(w, testDT)

	want := 1 / math.Sqrt2
	if !approx(p.data.DashDir.X, want) || !approx(p.data.DashDir.Y, -want) {
		t.Errorf("DashDir = %v, expected (%v, %v)", p.data.DashDir, want, -want)
	}
	if !approx(p.physics.SpeedX, want*cfg.Physics.DashSpeed) {
		t.Errorf("SpeedX = %v, expected %v", p.physics.SpeedX, want*cfg.Physics.DashSpeed)
	}
}

func TestDashOverridesBufferedJump(t *testing.T) {
	w := newTestWorld(t, room)
	settle(t, w)
	got := recordEvents(w)
	p := getPlayer(t, w)

	press(w, "Space")
	press(w, "KeyX")
	step(w, testDT)

	if countEvents(*got, EventJump) != 0 {
		t.Error("buffered jump fired alongside the dash")
	}
	if p.data.JumpBuffer != 0 {
		t.Errorf("JumpBuffer = %v, expected 0", p.data.JumpBuffer)
	}
}

func TestDashEndsOnCollision(t *testing.T) {
	w := newTestWorld(t, room)
	p := getPlayer(t, w)
	lift(w, p, 176-cfg.Player.CollisionWidth-3, 50)

	press(w, "KeyX")
	step(w, testDT)

	if p.data.Dashing() {
		t.Error("dash continued after hitting the wall")
	}
	if right := p.obj.X + p.obj.W; right > 176 {
		t.Errorf("right edge %v inside the wall", right)
	}
}

func TestGroundRefillsDash(t *testing.T) {
	w := newTestWorld(t, room)
	settle(t, w)
	p := getPlayer(t, w)
	p.data.Dashes = 0

	step(w, testDT)

	if p.data.Dashes != cfg.Physics.MaxDashes {
		t.Errorf("Dashes = %d, expected %d", p.data.Dashes, cfg.Physics.MaxDashes)
	}
}

func TestWallJump(t *testing.T) {
	w := newTestWorld(t, room)
	got := recordEvents(w)
	p := getPlayer(t, w)
	lift(w, p, 176-cfg.Player.CollisionWidth-cfg.Physics.SnapEpsilon, 40)
	p.physics.TouchingRight = true

	press(w, "Space")
	step(w, testDT)

	if countEvents(*got, EventWallJump) != 1 {
		t.Fatal("wall jump did not fire")
	}
	wantX := gamemath.MoveToward(-cfg.Physics.WallJumpX, 0, cfg.Physics.AirFriction*testDT)
	if p.physics.SpeedX != wantX {
		t.Errorf("SpeedX = %v, expected %v", p.physics.SpeedX, wantX)
	}
	if p.physics.SpeedY >= 0 {
		t.Errorf("SpeedY = %v, expected upward", p.physics.SpeedY)
	}
	if p.data.Facing != cfg.DirectionLeft {
		t.Errorf("Facing = %v, expected away from the wall", p.data.Facing)
	}
}

func TestGroundJumpWinsOverWallJump(t *testing.T) {
	w := newTestWorld(t, room)
	p := getPlayer(t, w)
	p.obj.X = 176 - cfg.Player.CollisionWidth - cfg.Physics.SnapEpsilon
	settle(t, w)
	if !p.physics.TouchingRight {
		t.Fatal("expected wall contact while standing flush")
	}
	got := recordEvents(w)

	press(w, "Space")
	step(w, testDT)

	if countEvents(*got, EventJump) != 1 || countEvents(*got, EventWallJump) != 0 {
		t.Errorf("events = %v, expected a single ground jump", *got)
	}
	if p.physics.SpeedX != 0 {
		t.Errorf("SpeedX = %v, ground jump must not push off the wall", p.physics.SpeedX)
	}
}

func TestWallSlideCapsFall(t *testing.T) {
	w := newTestWorld(t, room)
	p := getPlayer(t, w)
	lift(w, p, 176-cfg.Player.CollisionWidth-cfg.Physics.SnapEpsilon, 20)
	p.physics.TouchingRight = true
	p.physics.SpeedY = 400

	press(w, "ArrowRight")
	step(w, testDT)

	if !p.physics.WallSliding {
		t.Fatal("not wall sliding")
	}
	want := gamemath.MoveToward(cfg.Physics.MaxFallSpeed, cfg.Physics.WallSlideSpeed, cfg.Physics.WallSlideGrip*testDT)
	if p.physics.SpeedY != want {
		t.Errorf("SpeedY = %v, expected grip to pull the capped fall down to %v", p.physics.SpeedY, want)
	}

	release(w, "ArrowRight")
	press(w, "ArrowLeft")
	step(w, testDT)
	if p.physics.WallSliding {
		t.Error("still sliding while pushing away from the wall")
	}
}

func TestRunControlAcceleratesAndStops(t *testing.T) {
	w := newTestWorld(t, room)
	settle(t, w)
	p := getPlayer(t, w)

	press(w, "ArrowRight")
	for i := 0; i < 10; i++ {
		step(w, testDT)
	}
	if p.physics.SpeedX != cfg.Physics.MaxRunSpeed {
		t.Errorf("SpeedX = %v, expected max run speed", p.physics.SpeedX)
	}
	if CurrentPlayerState(w) != StateRunning {
		t.Errorf("state = %v, expected run", CurrentPlayerState(w))
	}

	release(w, "ArrowRight")
	for i := 0; i < 10; i++ {
		step(w, testDT)
	}
	if p.physics.SpeedX != 0 {
		t.Errorf("SpeedX = %v, expected friction to stop the player", p.physics.SpeedX)
	}
	if p.data.Facing != cfg.DirectionRight {
		t.Errorf("Facing = %v, expected right", p.data.Facing)
	}
}
