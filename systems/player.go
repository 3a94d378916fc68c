package systems

import (
	"math"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/input"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/automoto/summit/tags"
	"github.com/automoto/summit/world"
	"github.com/yohamta/donburi"
)

// UpdatePlayer advances the ability state machine one frame, moves the
// player through the tile grid and applies the interaction rules against
// the resolved position. Dead players are left to UpdateDeath.
func UpdatePlayer(w *world.World, dt float64) {
	entry, ok := tags.Player.First(w.ECS)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.Dead {
		return
	}
	obj := components.Object.Get(entry)
	physics := components.Physics.Get(entry)
	in := w.Input.Sample()

	refreshGround(player, physics, dt)

	player.JumpBuffer = math.Max(0, player.JumpBuffer-dt)
	if in.JumpPressed {
		player.JumpBuffer = cfg.Physics.JumpBufferTime
	}

	if in.DashPressed && player.Dashes > 0 && !player.Dashing() {
		startDash(w, obj, player, physics, in)
	}

	if player.Dashing() {
		player.DashTimer = math.Max(0, player.DashTimer-dt)
		physics.SpeedX = player.DashDir.X * cfg.Physics.DashSpeed
		physics.SpeedY = player.DashDir.Y * cfg.Physics.DashSpeed
		physics.WallSliding = false
	} else {
		resolveJump(w, obj, player, physics)
		applyRunControl(player, physics, in, dt)
		applyGravity(physics, in, dt)
		applyWallSlide(physics, in, dt)
	}

	wasGrounded := physics.OnGround
	fallSpeed := physics.SpeedY
	if MoveAndCollide(w, obj, physics, dt) {
		player.DashTimer = 0
	}
	if physics.OnGround && !wasGrounded {
		land(w, obj, fallSpeed)
	}

	UpdateInteractions(w, entry)
}

// refreshGround restores the coyote window and dash charges while grounded
// and lets the window run out in the air.
func refreshGround(player *components.PlayerData, physics *components.PhysicsData, dt float64) {
	if physics.OnGround {
		player.Coyote = cfg.Physics.CoyoteTime
		player.Dashes = cfg.Physics.MaxDashes
		return
	}
	player.Coyote = math.Max(0, player.Coyote-dt)
}

// startDash consumes a charge and locks the dash direction. Zero input
// dashes along the facing direction.
func startDash(w *world.World, obj *components.ObjectData, player *components.PlayerData, physics *components.PhysicsData, in input.Intent) {
	dx, dy := float64(in.MoveX), float64(in.MoveY)
	if dx == 0 && dy == 0 {
		dx = player.Facing
	}
	player.DashDir.X, player.DashDir.Y = gamemath.Normalize(dx, dy)
	player.Dashes--
	player.DashTimer = cfg.Physics.DashTime
	physics.SpeedX = player.DashDir.X * cfg.Physics.DashSpeed
	physics.SpeedY = player.DashDir.Y * cfg.Physics.DashSpeed
	player.JumpBuffer = 0

	TriggerScreenShake(w, cfg.ScreenShake.Dash)
	cx, cy := obj.Center()
	SpawnBurst(w, cx, cy, cfg.Bursts.Dash)
	publish(w, EventDash, cx, cy)
}

// resolveJump fires a buffered jump. Ground (or coyote) jumps are checked
// first, so a player eligible for both never wall-jumps.
func resolveJump(w *world.World, obj *components.ObjectData, player *components.PlayerData, physics *components.PhysicsData) {
	if player.JumpBuffer <= 0 {
		return
	}

	cx, cy := obj.Center()
	if player.Coyote > 0 {
		physics.SpeedY = -cfg.Physics.JumpSpeed
		player.Coyote = 0
		player.JumpBuffer = 0
		SpawnBurst(w, cx, obj.Y+obj.H, cfg.Bursts.Jump)
		publish(w, EventJump, cx, obj.Y+obj.H)
		return
	}

	wallDir := wallDirection(physics)
	if wallDir == 0 || physics.OnGround {
		return
	}
	physics.SpeedX = -wallDir * cfg.Physics.WallJumpX
	physics.SpeedY = -cfg.Physics.WallJumpY
	player.Facing = -wallDir
	player.JumpBuffer = 0
	SpawnBurst(w, cx, cy, cfg.Bursts.WallJump)
	publish(w, EventWallJump, cx, cy)
}

// wallDirection returns -1 or 1 for the single wall being touched, 0 when
// touching none or both.
func wallDirection(physics *components.PhysicsData) float64 {
	switch {
	case physics.TouchingLeft && !physics.TouchingRight:
		return -1
	case physics.TouchingRight && !physics.TouchingLeft:
		return 1
	}
	return 0
}

func applyRunControl(player *components.PlayerData, physics *components.PhysicsData, in input.Intent, dt float64) {
	if in.MoveX != 0 {
		player.Facing = float64(in.MoveX)
		accel := cfg.Physics.AirAccel
		if physics.OnGround {
			accel = cfg.Physics.GroundAccel
		}
		physics.SpeedX = gamemath.MoveToward(physics.SpeedX, float64(in.MoveX)*cfg.Physics.MaxRunSpeed, accel*dt)
		return
	}

	friction := cfg.Physics.AirFriction
	if physics.OnGround {
		friction = cfg.Physics.GroundFriction
	}
	physics.SpeedX = gamemath.MoveToward(physics.SpeedX, 0, friction*dt)
}

// applyGravity pulls the player down, more gently while jump is held on the
// way up.
func applyGravity(physics *components.PhysicsData, in input.Intent, dt float64) {
	gravity := cfg.Physics.Gravity
	if in.JumpHeld && physics.SpeedY < 0 {
		gravity *= cfg.Physics.JumpHoldGravityScale
	}
	physics.SpeedY = math.Min(physics.SpeedY+gravity*dt, cfg.Physics.MaxFallSpeed)
}

func applyWallSlide(physics *components.PhysicsData, in input.Intent, dt float64) {
	pushingIntoWall := !physics.OnGround &&
		((physics.TouchingLeft && in.MoveX < 0) || (physics.TouchingRight && in.MoveX > 0))

	if pushingIntoWall && physics.SpeedY > cfg.Physics.WallSlideSpeed {
		physics.WallSliding = true
		physics.SpeedY = gamemath.MoveToward(physics.SpeedY, cfg.Physics.WallSlideSpeed, cfg.Physics.WallSlideGrip*dt)
		return
	}
	physics.WallSliding = false
}

// land reports a touchdown and shakes the camera when it was a hard one.
func land(w *world.World, obj *components.ObjectData, fallSpeed float64) {
	cx := obj.X + obj.W/2
	if fallSpeed >= cfg.Physics.MaxFallSpeed*cfg.Camera.LandShakeFall {
		TriggerScreenShake(w, cfg.Camera.LandShake)
	}
	publish(w, EventLand, cx, obj.Y+obj.H)
}

// playerParts returns the player's entry and core components.
func playerParts(w *world.World) (*donburi.Entry, *components.PlayerData, *components.PhysicsData, *components.ObjectData, bool) {
	entry, ok := tags.Player.First(w.ECS)
	if !ok {
		return nil, nil, nil, nil, false
	}
	return entry, components.Player.Get(entry), components.Physics.Get(entry), components.Object.Get(entry), true
}
