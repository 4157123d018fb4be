package session

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Janitor periodically sweeps idle sessions out of the store. There is no
// disconnect event in a connectionless API, so idle expiry stands in for
// session teardown.
type Janitor struct {
	cron  *cron.Cron
	store *Store
}

func NewJanitor(store *Store) *Janitor {
	return &Janitor{
		cron:  cron.New(),
		store: store,
	}
}

// Start begins sweeping once a minute.
func (j *Janitor) Start() error {
	_, err := j.cron.AddFunc("@every 1m", j.sweep)
	if err != nil {
		return err
	}
	j.cron.Start()
	log.Info().Msg("⏰ session janitor started")
	return nil
}

func (j *Janitor) Stop() {
	j.cron.Stop()
	log.Info().Msg("⏰ session janitor stopped")
}

func (j *Janitor) sweep() {
	removed := j.store.SweepIdle()
	if removed > 0 {
		log.Info().Int("removed", removed).Int("live", j.store.Len()).Msg("swept idle sessions")
	}
}
