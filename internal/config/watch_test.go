package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/preston-bernstein/mlb-scoreboard/internal/config"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeConfigFile(t, "game_date: \"04/01/2025\"\n")
	changes := make(chan *config.Config, 16)

	convey.Convey("Given a watched config file", t, func() {
		w := config.NewWatcher(path, nil, func(cfg *config.Config) { changes <- cfg })
		convey.So(w.Start(), convey.ShouldBeNil)
		defer func() { _ = w.Stop() }()

		convey.Convey("When the date override changes", func() {
			// Let the watcher settle before writing.
			time.Sleep(50 * time.Millisecond)
			convey.So(os.WriteFile(path, []byte("game_date: \"04/02/2025\"\n"), 0o600), convey.ShouldBeNil)

			got := ""
			deadline := time.After(5 * time.Second)
		wait:
			for {
				select {
				case cfg := <-changes:
					if cfg.GameDate == "04/02/2025" {
						got = cfg.GameDate
						break wait
					}
				case <-deadline:
					break wait
				}
			}

			convey.Convey("Then the callback receives the new date", func() {
				convey.So(got, convey.ShouldEqual, "04/02/2025")
			})
		})
	})
}
