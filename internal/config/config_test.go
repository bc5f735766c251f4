package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/shelfwatch/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file or environment overrides", t, func() {
		t.Setenv("SHELFWATCH_CONFIG", "")
		os.Unsetenv("SHELFWATCH_CONFIG")

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then defaults apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":3000")
				So(cfg.ConfidenceThreshold, ShouldEqual, 0.90)
				So(cfg.LowStockThreshold, ShouldEqual, 10)
				So(cfg.ClassifierSeed, ShouldEqual, 42)
				So(cfg.AuditLogPath, ShouldEqual, "ml/audit_log.jsonl")
			})
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		t.Setenv("SHELFWATCH_CONFIDENCE_THRESHOLD", "0.75")
		t.Setenv("SHELFWATCH_LOW_STOCK_THRESHOLD", "4")
		t.Setenv("SHELFWATCH_API_URL", "http://example.test/api/inventory")

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then env values win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.ConfidenceThreshold, ShouldEqual, 0.75)
				So(cfg.LowStockThreshold, ShouldEqual, 4)
				So(cfg.APIURL, ShouldEqual, "http://example.test/api/inventory")
			})

			Convey("Then untouched fields keep defaults", func() {
				So(cfg.Addr, ShouldEqual, ":3000")
				So(cfg.FalsePositiveRate, ShouldEqual, 0.3)
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "shelfwatch.yaml")
		yaml := "confidence_threshold: 0.80\nlabels_dir: /data/labels\n"
		So(os.WriteFile(path, []byte(yaml), 0o644), ShouldBeNil)
		t.Setenv("SHELFWATCH_CONFIG", path)

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then file values override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.ConfidenceThreshold, ShouldEqual, 0.80)
				So(cfg.LabelsDir, ShouldEqual, "/data/labels")
			})
		})

		Convey("When an env var also sets the same key", func() {
			t.Setenv("SHELFWATCH_CONFIDENCE_THRESHOLD", "0.95")
			cfg, err := config.Load(context.Background())

			Convey("Then env wins over the file", func() {
				So(err, ShouldBeNil)
				So(cfg.ConfidenceThreshold, ShouldEqual, 0.95)
			})
		})
	})

	Convey("Given a missing config file path", t, func() {
		t.Setenv("SHELFWATCH_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

		Convey("When loading", func() {
			_, err := config.Load(context.Background())

			Convey("Then the load fails with the load sentinel", func() {
				So(err, ShouldWrap, config.ErrLoadConfig)
			})
		})
	})
}

func TestValidation(t *testing.T) {
	Convey("Given invalid overrides", t, func() {
		cases := map[string]string{
			"SHELFWATCH_CONFIDENCE_THRESHOLD": "1.5",
			"SHELFWATCH_LOW_STOCK_THRESHOLD":  "-1",
			"SHELFWATCH_FALSE_POSITIVE_RATE":  "2",
		}

		for key, value := range cases {
			Convey("When "+key+" is "+value, func() {
				t.Setenv(key, value)
				_, err := config.Load(context.Background())

				Convey("Then loading is rejected", func() {
					So(err, ShouldWrap, config.ErrInvalidConfig)
				})
			})
		}
	})
}
