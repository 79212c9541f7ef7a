package config_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/okian/seograde/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.MaxBodyBytes, convey.ShouldEqual, 1<<20)
			convey.So(cfg.BatchMaxItems, convey.ShouldEqual, 50)
			convey.So(cfg.BatchConcurrency, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.CacheSize, convey.ShouldEqual, 1024)
			convey.So(cfg.KeywordDensityMin, convey.ShouldEqual, 0.5)
			convey.So(cfg.KeywordDensityMax, convey.ShouldEqual, 2.5)
			convey.So(cfg.IntroWindowWords, convey.ShouldEqual, 100)
		})

		convey.Convey("Then the defaults should validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs breaking one invariant each", t, func() {
		base := func() *config.Config { return config.New(context.Background()) }

		cases := []struct {
			name   string
			mutate func(*config.Config)
		}{
			{"empty addr", func(c *config.Config) { c.Addr = "" }},
			{"non-positive body cap", func(c *config.Config) { c.MaxBodyBytes = 0 }},
			{"non-positive batch limit", func(c *config.Config) { c.BatchMaxItems = 0 }},
			{"non-positive batch concurrency", func(c *config.Config) { c.BatchConcurrency = -1 }},
			{"negative cache size", func(c *config.Config) { c.CacheSize = -5 }},
			{"zero density floor", func(c *config.Config) { c.KeywordDensityMin = 0 }},
			{"inverted density band", func(c *config.Config) { c.KeywordDensityMin = 3; c.KeywordDensityMax = 1 }},
			{"non-positive intro window", func(c *config.Config) { c.IntroWindowWords = 0 }},
		}

		for _, tc := range cases {
			tc := tc
			convey.Convey("Then validation rejects "+tc.name, func() {
				cfg := base()
				tc.mutate(cfg)
				err := cfg.Validate()
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}
