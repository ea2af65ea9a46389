package jobs

import (
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq server handling background tasks. Blocks; run
// it in its own goroutine.
func StartWorker(redisURI string, overdueSweep asynq.HandlerFunc) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOverdueOptionsSweep, overdueSweep)

	if err := srv.Run(mux); err != nil {
		log.Fatal("❌ Asynq worker failed:", err)
	}
}

// StartScheduler registers the daily overdue sweep. Blocks; run it in its
// own goroutine.
func StartScheduler(redisURI string) {
	loc, _ := time.LoadLocation("Europe/Amsterdam")
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisURI},
		&asynq.SchedulerOpts{Location: loc},
	)

	task, err := NewOverdueSweepTask(time.Now().Unix())
	if err != nil {
		log.Fatal("❌ Failed to build sweep task:", err)
	}
	if _, err := scheduler.Register("@daily", task); err != nil {
		log.Fatal("❌ Failed to register sweep schedule:", err)
	}

	if err := scheduler.Run(); err != nil {
		log.Fatal("❌ Asynq scheduler failed:", err)
	}
}
