package engine

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lightcycle/components"
	"github.com/lixenwraith/lightcycle/constants"
	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/events"
	"github.com/lixenwraith/lightcycle/vmath"
)

// PlayerID is the id of the player vehicle, bots are numbered from 1
const PlayerID components.VehicleID = 0

// Config holds the construction parameters of a simulation
type Config struct {
	Width, Height  int
	Bots           int
	MaxTrailLength int    // 0 selects constants.MaxTrailLength
	Seed           uint64 // Seed of the single PRNG, 0 is remapped by vmath.NewFastRand
}

// Option customizes a Simulation
type Option func(*Simulation)

// WithLogger sets the structured logger for game events
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// Simulation owns the arena, the vehicle list, and the PRNG, and advances them one tick at a time
// Not safe for concurrent use: input injection and Tick must run on the same goroutine
type Simulation struct {
	arena    *Arena
	vehicles []*Vehicle
	rng      *vmath.FastRand
	seed     uint64

	queue        *events.EventQueue
	spawnElapsed time.Duration
	tick         uint64

	logger  zerolog.Logger
	metrics *simMetrics
	ctx     context.Context
}

// NewSimulation builds the arena with the player and cfg.Bots bots in their starting layout
func NewSimulation(cfg Config, opts ...Option) (*Simulation, error) {
	if cfg.Bots < 0 {
		return nil, fmt.Errorf("bots %d: %w", cfg.Bots, ErrInvalidBotCount)
	}
	if cfg.MaxTrailLength == 0 {
		cfg.MaxTrailLength = constants.MaxTrailLength
	}
	if cfg.MaxTrailLength < 0 {
		return nil, fmt.Errorf("max trail length %d: %w", cfg.MaxTrailLength, ErrInvalidTrailLength)
	}

	arena, err := NewArena(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Height < constants.InitialTrailLength || cfg.Width < cfg.Bots+2 {
		return nil, fmt.Errorf("arena %dx%d with %d bots: %w", cfg.Width, cfg.Height, cfg.Bots, ErrBoardTooSmall)
	}

	s := &Simulation{
		arena:   arena,
		rng:     vmath.NewFastRand(cfg.Seed),
		seed:    cfg.Seed,
		queue:   events.NewEventQueue(),
		logger:  zerolog.Nop(),
		metrics: newSimMetrics(),
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Evenly spaced columns, heads on one row, trails extending downward
	headY := (cfg.Height - constants.InitialTrailLength) / 2
	slots := cfg.Bots + 2
	for i := 0; i <= cfg.Bots; i++ {
		x := (i + 1) * cfg.Width / slots
		v := NewVehicle(components.VehicleID(i), i == 0, core.C(x, headY), core.Up, cfg.MaxTrailLength)
		s.vehicles = append(s.vehicles, v)
	}
	arena.SetVehicles(s.vehicles)

	s.logger.Debug().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("bots", cfg.Bots).
		Uint64("seed", cfg.Seed).
		Msg("simulation created")

	return s, nil
}

// ===== ACCESSORS =====

func (s *Simulation) Arena() *Arena {
	return s.arena
}

// Vehicles returns the live vehicle list, do not modify
func (s *Simulation) Vehicles() []*Vehicle {
	return s.vehicles
}

// Vehicle returns the vehicle with id, if it is still in the list
func (s *Simulation) Vehicle(id components.VehicleID) (*Vehicle, bool) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}

// Player returns the player vehicle, which is never pruned
func (s *Simulation) Player() *Vehicle {
	v, _ := s.Vehicle(PlayerID)
	return v
}

// Events returns the queue the presentation layer drains after each tick
func (s *Simulation) Events() *events.EventQueue {
	return s.queue
}

func (s *Simulation) Seed() uint64 {
	return s.seed
}

// TickCount returns the number of ticks advanced so far
func (s *Simulation) TickCount() uint64 {
	return s.tick
}

// ===== INPUT =====

// SetPlayerDirection takes effect on the player's next move
// Reversing into the trail is accepted and is fatal unless shielded
func (s *Simulation) SetPlayerDirection(d core.Direction) {
	if p := s.Player(); p != nil {
		p.Direction = d
	}
}

// ActivatePlayerPower consumes the top of the player's inventory
func (s *Simulation) ActivatePlayerPower() {
	p := s.Player()
	if p == nil {
		return
	}
	pu, ok := p.UsePower(s.arena)
	if !ok {
		return
	}
	s.emit(events.GameEvent{
		Type:    events.EventPowerActivated,
		Vehicle: p.ID,
		Cell:    p.Head(),
		Payload: &events.PowerUpPayload{PowerUp: pu},
	})
	if pu.Kind == components.PowerBomb {
		s.emit(events.GameEvent{
			Type:    events.EventBombPlaced,
			Vehicle: p.ID,
			Cell:    p.Head(),
			Payload: &events.BombPayload{Owner: p.ID},
		})
	}
}

// RotatePlayerPowers cycles the player's inventory
func (s *Simulation) RotatePlayerPowers() {
	if p := s.Player(); p != nil {
		p.RotatePowers()
	}
}

// ===== TICK =====

// Tick advances the simulation by elapsed game time
//
// Order:
//  1. timed effects count down and revert
//  2. grace timers of vehicles destroyed in earlier ticks count down
//  3. bombs count down; detonated bombs leave the active list, then blast in order
//  4. vehicles last to first: destroyed bots are pruned once invisible, live vehicles
//     move CurrentSpeed sub-steps with a pickup check after each successful one
//  5. power-up spawn timer
//  6. CurrentSpeed resyncs to BaseSpeed
func (s *Simulation) Tick(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	s.tick++
	s.metrics.ticks.Add(s.ctx, 1)

	s.advanceEffects(elapsed)
	s.advanceGrace(elapsed)
	s.advanceBombs(elapsed)
	s.advanceVehicles()

	s.spawnElapsed += elapsed
	if s.spawnElapsed >= constants.PowerUpSpawnInterval {
		p := s.arena.SpawnPowerUp(s.rng)
		s.spawnElapsed = 0
		s.emit(events.GameEvent{
			Type:    events.EventPowerUpSpawned,
			Vehicle: -1,
			Cell:    p.Location,
			Payload: &events.PowerUpPayload{PowerUp: p},
		})
	}

	for _, v := range s.vehicles {
		v.CurrentSpeed = v.BaseSpeed
	}
}

func (s *Simulation) advanceEffects(elapsed time.Duration) {
	for _, v := range s.vehicles {
		for _, kind := range v.advanceEffects(elapsed) {
			s.emit(events.GameEvent{
				Type:    events.EventEffectExpired,
				Vehicle: v.ID,
				Cell:    v.Head(),
				Payload: &events.EffectExpiredPayload{Kind: kind},
			})
		}
	}
}

// advanceGrace runs before anything can destroy a vehicle this tick,
// so a vehicle's grace period starts counting on the tick after its destruction
func (s *Simulation) advanceGrace(elapsed time.Duration) {
	for _, v := range s.vehicles {
		if !v.IsAlive() {
			v.advanceGrace(elapsed)
		}
	}
}

func (s *Simulation) advanceBombs(elapsed time.Duration) {
	for _, b := range s.arena.AdvanceBombs(elapsed) {
		s.emit(events.GameEvent{
			Type:    events.EventBombExploded,
			Vehicle: -1,
			Cell:    b.Location,
			Payload: &events.BombPayload{Owner: b.Owner},
		})
		for _, v := range s.arena.Explode(b.Location) {
			s.emitDestroyed(v)
		}
	}
}

func (s *Simulation) advanceVehicles() {
	for i := len(s.vehicles) - 1; i >= 0; i-- {
		v := s.vehicles[i]

		if !v.IsAlive() {
			if !v.IsPlayer && !v.IsVisible {
				s.vehicles = slices.Delete(s.vehicles, i, i+1)
				s.arena.SetVehicles(s.vehicles)
				s.emit(events.GameEvent{
					Type:    events.EventVehicleRemoved,
					Vehicle: v.ID,
					Cell:    v.Head(),
				})
			}
			continue
		}

		for step := 0; step < v.CurrentSpeed; step++ {
			if !v.Move(s.arena, s.rng) {
				s.emitDestroyed(v)
				break
			}
			s.collect(v)
		}
	}
}

// collect moves every board power-up under v's head onto its inventory
func (s *Simulation) collect(v *Vehicle) {
	for _, p := range s.arena.TakePowerUpsAt(v.Head()) {
		v.inventory.Push(p)
		s.emit(events.GameEvent{
			Type:    events.EventPowerUpCollected,
			Vehicle: v.ID,
			Cell:    p.Location,
			Payload: &events.PowerUpPayload{PowerUp: p},
		})
	}
}

func (s *Simulation) emitDestroyed(v *Vehicle) {
	s.emit(events.GameEvent{
		Type:    events.EventVehicleDestroyed,
		Vehicle: v.ID,
		Cell:    v.Head(),
		Payload: &events.VehicleDestroyedPayload{Cause: v.DestroyCause, IsPlayer: v.IsPlayer},
	})
}

// emit publishes an event to the queue, the metrics, and the debug log
func (s *Simulation) emit(ev events.GameEvent) {
	ev.Tick = s.tick
	s.queue.Push(ev)
	s.metrics.record(s.ctx, ev)

	e := s.logger.Debug().
		Uint64("tick", ev.Tick).
		Str("event", ev.Type.String()).
		Stringer("cell", ev.Cell)
	if ev.Vehicle >= 0 {
		e = e.Int("vehicle", int(ev.Vehicle))
	}
	switch p := ev.Payload.(type) {
	case *events.VehicleDestroyedPayload:
		e = e.Stringer("cause", p.Cause).Bool("player", p.IsPlayer)
	case *events.PowerUpPayload:
		e = e.Stringer("kind", p.PowerUp.Kind)
	case *events.EffectExpiredPayload:
		e = e.Stringer("kind", p.Kind)
	case *events.BombPayload:
		e = e.Int("owner", int(p.Owner))
	}
	e.Msg("game event")
}
