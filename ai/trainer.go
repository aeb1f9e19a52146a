package ai

import (
	"log"
	"time"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/store"
)

type TrainOptions struct {
	Episodes int
	// MaxFrames caps an episode so a snake circling forever still ends
	MaxFrames int
	LogEvery  int
	// ModelPath is where the policy is saved at the end; empty skips saving
	ModelPath string
	// Store, when set, keeps the best score and the game history
	Store store.Store
}

func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		Episodes:  500,
		MaxFrames: 20000,
		LogEvery:  50,
	}
}

// Train plays headless episodes with a learning pilot and summarizes the
// scores. Frames are pumped through a FrameQueue exactly like a frontend
// would, just without waiting for a display.
func Train(cfg types.Config, policy Policy, opts TrainOptions) (store.Summary, error) {
	var st manager.ScoreStore
	if opts.Store != nil {
		st = opts.Store
	}
	session, err := game.NewSession(cfg, game.Options{Store: st})
	if err != nil {
		return store.Summary{}, err
	}

	pilot := NewPilot(policy, true)
	queue := game.NewFrameQueue()
	loop := game.NewLoop(session, queue, &game.DisplayList{})
	loop.SetSteerer(pilot)
	loop.OnFrame(pilot.Observe)

	logEvery := opts.LogEvery
	if logEvery <= 0 {
		logEvery = 50
	}

	games := make([]store.GameRecord, 0, opts.Episodes)
	best, windowScore := 0, 0
	for episode := 1; episode <= opts.Episodes; episode++ {
		start := time.Now()
		if episode == 1 {
			loop.Start()
		} else {
			loop.Reset()
		}

		frames := 0
		for queue.Pending() > 0 {
			if opts.MaxFrames > 0 && frames >= opts.MaxFrames {
				loop.Stop()
				pilot.Abandon()
				break
			}
			queue.RunPending()
			frames++
		}

		score := session.Score()
		games = append(games, store.GameRecord{
			GameID:    session.GameID,
			SessionID: session.ID,
			Score:     score,
			Steps:     int(session.Steps()),
			StartTime: start,
			EndTime:   time.Now(),
		})
		windowScore += score
		best = max(best, score)

		if episode%logEvery == 0 {
			log.Printf("train: episode %d/%d, avg score %.2f, best %d, epsilon %.3f",
				episode, opts.Episodes, float64(windowScore)/float64(logEvery), best, policy.Epsilon())
			windowScore = 0
		}
	}

	if opts.ModelPath != "" {
		if err := policy.Save(opts.ModelPath); err != nil {
			return store.Summarize(games), err
		}
		log.Printf("train: model saved to %s", opts.ModelPath)
	}
	return store.Summarize(games), nil
}
