package auditlog_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/shelfwatch/internal/adapters/auditlog"
	"github.com/okian/shelfwatch/internal/domain/model"
	"github.com/okian/shelfwatch/internal/domain/types"
)

func eventsFixture(n int) []model.AuditEvent {
	events := make([]model.AuditEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, model.AuditEvent{
			Timestamp:         time.Date(2026, 8, 1, 12, 0, i, 0, time.UTC),
			SceneID:           "shelf_001",
			Item:              "Arduino Kit",
			EventType:         types.DispositionVerified,
			Confidence:        0.95,
			RecommendedAction: types.ActionNone,
			Observed:          model.ObservedYes,
		})
	}
	return events
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	So(err, ShouldBeNil)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestWriterAppend(t *testing.T) {
	Convey("Given a writer on a fresh log", t, func() {
		path := filepath.Join(t.TempDir(), "audit", "audit_log.jsonl")
		w := auditlog.New(path)

		Convey("When appending a batch", func() {
			So(w.Append(context.Background(), eventsFixture(3)), ShouldBeNil)

			Convey("Then the log holds one JSON event per line, in order", func() {
				lines := readLines(t, path)
				So(lines, ShouldHaveLength, 3)
				for i, line := range lines {
					var event model.AuditEvent
					So(json.Unmarshal([]byte(line), &event), ShouldBeNil)
					So(event.Timestamp.Second(), ShouldEqual, i)
					So(event.EventType, ShouldEqual, types.DispositionVerified)
				}
			})
		})

		Convey("When appending twice with the same inputs", func() {
			So(w.Append(context.Background(), eventsFixture(2)), ShouldBeNil)
			first := readLines(t, path)
			So(w.Append(context.Background(), eventsFixture(2)), ShouldBeNil)

			Convey("Then the log doubles but prior lines are untouched", func() {
				lines := readLines(t, path)
				So(lines, ShouldHaveLength, 4)
				So(lines[0], ShouldEqual, first[0])
				So(lines[1], ShouldEqual, first[1])
			})
		})

		Convey("When appending an empty batch", func() {
			So(w.Append(context.Background(), nil), ShouldBeNil)

			Convey("Then the log file is not created", func() {
				_, err := os.Stat(path)
				So(os.IsNotExist(err), ShouldBeTrue)
			})
		})

		Convey("When the observed state round-trips through the log", func() {
			events := eventsFixture(1)
			events[0].EventType = types.DispositionUncertain
			events[0].Observed = model.ObservedUncertain
			So(w.Append(context.Background(), events), ShouldBeNil)

			Convey("Then uncertain sightings serialize as the string form", func() {
				lines := readLines(t, path)
				So(lines[0], ShouldContainSubstring, `"observed":"uncertain"`)
			})
		})
	})
}

func TestWriterWriteFailure(t *testing.T) {
	Convey("Given an existing log and an unwritable log path", t, func() {
		dir := t.TempDir()
		goodPath := filepath.Join(dir, "audit_log.jsonl")
		good := auditlog.New(goodPath)
		So(good.Append(context.Background(), eventsFixture(2)), ShouldBeNil)

		// A directory at the log path makes the append fail after the
		// lock is taken.
		badPath := filepath.Join(dir, "bad_log.jsonl")
		So(os.MkdirAll(badPath, 0o755), ShouldBeNil)
		bad := auditlog.New(badPath)

		Convey("When appending to the unwritable path", func() {
			err := bad.Append(context.Background(), eventsFixture(1))

			Convey("Then the failure is fatal, not silent", func() {
				So(err, ShouldWrap, auditlog.ErrLogWrite)
			})

			Convey("Then previously written entries are untouched", func() {
				So(readLines(t, goodPath), ShouldHaveLength, 2)
			})
		})
	})
}

func TestWriterSingleWriter(t *testing.T) {
	Convey("Given a held audit log lock", t, func() {
		path := filepath.Join(t.TempDir(), "audit_log.jsonl")
		first := auditlog.New(path)
		second := auditlog.New(path)

		// Simulate a competing writer by holding the lock through a
		// long append from the other side.
		Convey("When both writers use separate lock files", func() {
			other := auditlog.New(path, auditlog.WithLockPath(filepath.Join(filepath.Dir(path), "other.lock")))
			So(first.Append(context.Background(), eventsFixture(1)), ShouldBeNil)
			So(other.Append(context.Background(), eventsFixture(1)), ShouldBeNil)

			Convey("Then appends still serialize through the file API", func() {
				So(readLines(t, path), ShouldHaveLength, 2)
			})
		})

		Convey("When the same lock path is reused after release", func() {
			So(first.Append(context.Background(), eventsFixture(1)), ShouldBeNil)
			So(second.Append(context.Background(), eventsFixture(1)), ShouldBeNil)

			Convey("Then sequential writers succeed", func() {
				So(readLines(t, path), ShouldHaveLength, 2)
			})
		})
	})
}
