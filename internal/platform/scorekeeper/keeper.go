// Package scorekeeper turns a stream of per-tick game states into saved
// runs. Both frontends feed it, so a run is recorded the same way whether
// it was played in a terminal, a window or over SSH.
package scorekeeper

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/agent8/internal/core"
	"github.com/vovakirdan/agent8/internal/storage"
)

// Keeper records one run per death. A run starts at Start or when the
// game leaves the game over state, and ends the first tick it is over.
type Keeper struct {
	store  *storage.Store
	log    *log.Logger
	gameID string
	player string
	seed   int64

	ticks   int
	over    bool
	saved   bool
	best    int
	lastRun string
}

// New creates a keeper. A nil store keeps the best score in memory only.
func New(store *storage.Store, gameID, player string, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	k := &Keeper{
		store:  store,
		log:    logger,
		gameID: gameID,
		player: player,
	}
	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			k.best = best
		}
	}
	return k
}

// Start begins a fresh run, e.g. after a restart with a new seed.
func (k *Keeper) Start(seed int64) {
	k.seed = seed
	k.ticks = 0
	k.over = false
	k.saved = false
}

// Observe takes the state after a tick. deaths is the game's death count,
// or 0 if it does not keep one. It returns the run ID when this tick ended
// a run that was saved.
func (k *Keeper) Observe(state core.GameState, deaths int) string {
	if !state.GameOver {
		if k.over {
			// Respawned
			k.ticks = 0
			k.saved = false
		}
		k.over = false
		if !state.Paused {
			k.ticks++
		}
		return ""
	}

	k.over = true
	if k.saved {
		return ""
	}
	k.saved = true
	k.best = max(k.best, state.Score)
	if k.store == nil || state.Score <= 0 {
		return ""
	}

	id, err := k.store.SaveRun(storage.Run{
		GameID: k.gameID,
		Player: k.player,
		Score:  state.Score,
		Deaths: deaths,
		Ticks:  k.ticks,
		Seed:   k.seed,
	})
	if err != nil {
		k.log.Warn("could not save run", "err", err)
		return ""
	}
	k.lastRun = id
	k.log.Info("run saved", "run", id, "score", state.Score, "player", k.player)
	return id
}

// Best returns the best score seen, stored or played.
func (k *Keeper) Best() int {
	return k.best
}

// Ticks returns the length of the current run.
func (k *Keeper) Ticks() int {
	return k.ticks
}

// LastRun returns the ID of the most recently saved run.
func (k *Keeper) LastRun() string {
	return k.lastRun
}
