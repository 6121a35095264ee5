package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func getMatch(w donburi.World) *components.MatchData {
	if entry, ok := components.Match.First(w); ok {
		return components.Match.Get(entry)
	}
	return nil
}

func getScheduler(w donburi.World) *components.SchedulerData {
	if entry, ok := components.Scheduler.First(w); ok {
		return components.Scheduler.Get(entry)
	}
	return nil
}

func getSpawnQueue(w donburi.World) *components.SpawnQueueData {
	if entry, ok := components.SpawnQueue.First(w); ok {
		return components.SpawnQueue.Get(entry)
	}
	return nil
}

func getSpace(w donburi.World) *resolv.Space {
	if entry, ok := components.Space.First(w); ok {
		return components.Space.Get(entry)
	}
	return nil
}

// floorY is the top of the stage ground, or the configured floor without a stage.
func floorY(w donburi.World) float64 {
	if entry, ok := components.Stage.First(w); ok {
		if stage := components.Stage.Get(entry); stage.StageData != nil {
			return stage.FloorY
		}
	}
	return cfg.Physics.FloorY
}

func stageWidth(w donburi.World) float64 {
	if entry, ok := components.Stage.First(w); ok {
		if stage := components.Stage.Get(entry); stage.StageData != nil {
			return stage.Width
		}
	}
	return cfg.Stage.Width
}

// OnGround reports whether the fighter rests on the stage floor.
func OnGround(w donburi.World, e *donburi.Entry) bool {
	obj := components.Object.Get(e)
	return gamemath.OnGround(obj.Y, obj.H, floorY(w))
}

func currentTick(w donburi.World) int64 {
	if m := getMatch(w); m != nil {
		return m.Tick
	}
	return 0
}

// alive reports whether e still exists in the world.
func alive(w donburi.World, e *donburi.Entry) bool {
	return e != nil && w.Valid(e.Entity())
}

// TickSystems returns the per-tick update order. Events raised during the
// tick are drained by the caller afterwards.
func TickSystems() []func(donburi.World) {
	return []func(donburi.World){
		UpdateMatch,
		UpdateScheduler,
		UpdateInput,
		UpdateAnimations,
		UpdatePhysics,
		UpdateFighterStates,
		UpdateBots,
		WithPlaying(UpdateAttacks),
		WithPlaying(UpdateProjectiles),
		UpdateFacing,
		UpdateHealthBars,
	}
}
