package main

import (
	"fog-explorer/internal/locomotion"
	"fog-explorer/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// player exposes the physics body to the locomotion controller.
type player struct {
	body  *physics.Body
	spawn mgl32.Vec3
}

func newPlayer(world *physics.World, spawn mgl32.Vec3, radius, mass float32) *player {
	size := 2 * radius
	b := physics.NewBody(spawn, mgl32.Vec3{size, size, size}, mass, false)
	world.AddBody(b)
	return &player{body: b, spawn: spawn}
}

func (p *player) Position() mgl32.Vec3 {
	return p.body.Position()
}

// Handle is nil until the body is in a world.
func (p *player) Handle() locomotion.Handle {
	if !p.body.Attached() {
		return nil
	}
	return p.body
}

// Respawn puts the player back at its spawn point, at rest.
func (p *player) Respawn() {
	p.body.Teleport(p.spawn)
}
