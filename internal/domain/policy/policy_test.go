package policy_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/shelfwatch/internal/domain/model"
	"github.com/okian/shelfwatch/internal/domain/policy"
	"github.com/okian/shelfwatch/internal/domain/types"
)

func TestPolicyApply(t *testing.T) {
	Convey("Given a policy with threshold 0.90", t, func() {
		fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		pol, err := policy.New(0.90, policy.WithClock(func() time.Time { return fixed }))
		So(err, ShouldBeNil)

		Convey("When a scene mixes confidences around the threshold", func() {
			scenes := []model.Scene{
				{
					SceneID: "shelf_001",
					Predictions: []model.Prediction{
						{Name: "Arduino Kit", Confidence: 0.95},
						{Name: "Webcam", Confidence: 0.90},
						{Name: "USB Cable", Confidence: 0.85},
					},
				},
			}
			part, events, err := pol.Apply(context.Background(), scenes)
			So(err, ShouldBeNil)

			Convey("Then confidence at the threshold is accepted", func() {
				So(part.Accepted, ShouldHaveLength, 1)
				So(part.Accepted[0].Predictions, ShouldHaveLength, 2)
				So(part.Accepted[0].Predictions[0].Name, ShouldEqual, "Arduino Kit")
				So(part.Accepted[0].Predictions[1].Name, ShouldEqual, "Webcam")
			})

			Convey("And below-threshold predictions are uncertain with one audit event", func() {
				So(part.Uncertain, ShouldHaveLength, 1)
				So(part.Uncertain[0].Predictions, ShouldHaveLength, 1)
				So(part.Uncertain[0].Predictions[0].Name, ShouldEqual, "USB Cable")

				So(events, ShouldHaveLength, 1)
				So(events[0].EventType, ShouldEqual, types.DispositionUncertain)
				So(events[0].RecommendedAction, ShouldEqual, types.ActionManualReview)
				So(events[0].SceneID, ShouldEqual, "shelf_001")
				So(events[0].Item, ShouldEqual, "USB Cable")
				So(events[0].Confidence, ShouldEqual, 0.85)
				So(events[0].Timestamp, ShouldEqual, fixed)
			})

			Convey("And the reason cites the confidence and the threshold", func() {
				So(events[0].Reason, ShouldContainSubstring, "0.85")
				So(events[0].Reason, ShouldContainSubstring, "0.90")
			})
		})

		Convey("When every prediction in a scene lands on one side", func() {
			scenes := []model.Scene{
				{SceneID: "all_good", Predictions: []model.Prediction{{Name: "Keyboard", Confidence: 0.99}}},
				{SceneID: "all_bad", Predictions: []model.Prediction{{Name: "Webcam", Confidence: 0.50}}},
			}
			part, events, err := pol.Apply(context.Background(), scenes)
			So(err, ShouldBeNil)

			Convey("Then empty partitions are omitted, not emitted empty", func() {
				So(part.Accepted, ShouldHaveLength, 1)
				So(part.Accepted[0].SceneID, ShouldEqual, "all_good")
				So(part.Uncertain, ShouldHaveLength, 1)
				So(part.Uncertain[0].SceneID, ShouldEqual, "all_bad")
				So(events, ShouldHaveLength, 1)
			})
		})

		Convey("When a scene has an empty prediction list", func() {
			scenes := []model.Scene{{SceneID: "empty_shelf", Predictions: []model.Prediction{}}}
			part, events, err := pol.Apply(context.Background(), scenes)
			So(err, ShouldBeNil)

			Convey("Then it vanishes from both partitions without events", func() {
				So(part.Accepted, ShouldBeEmpty)
				So(part.Uncertain, ShouldBeEmpty)
				So(events, ShouldBeEmpty)
			})
		})

		Convey("When the scene lacks a scene_id", func() {
			scenes := []model.Scene{{Predictions: []model.Prediction{{Name: "Webcam", Confidence: 0.5}}}}
			_, _, err := pol.Apply(context.Background(), scenes)

			Convey("Then Apply fails with ErrMalformedScene", func() {
				So(err, ShouldWrap, policy.ErrMalformedScene)
			})
		})

		Convey("When the scene lacks a predictions field", func() {
			scenes := []model.Scene{{SceneID: "no_preds"}}
			_, _, err := pol.Apply(context.Background(), scenes)

			Convey("Then Apply fails with ErrMalformedScene", func() {
				So(err, ShouldWrap, policy.ErrMalformedScene)
			})
		})

		Convey("When a prediction carries a confidence outside [0,1]", func() {
			scenes := []model.Scene{{SceneID: "bad", Predictions: []model.Prediction{{Name: "Webcam", Confidence: 1.5}}}}
			_, _, err := pol.Apply(context.Background(), scenes)

			Convey("Then Apply rejects the scene instead of silently skipping", func() {
				So(err, ShouldWrap, policy.ErrMalformedScene)
			})
		})
	})
}

func TestPolicyCountInvariant(t *testing.T) {
	Convey("Given scenes with a known number of predictions", t, func() {
		pol, err := policy.New(0.90)
		So(err, ShouldBeNil)

		scenes := []model.Scene{
			{SceneID: "a", Predictions: []model.Prediction{
				{Name: "Arduino Kit", Confidence: 0.95},
				{Name: "USB Cable", Confidence: 0.42},
				{Name: "Keyboard", Confidence: 0.90},
			}},
			{SceneID: "b", Predictions: []model.Prediction{
				{Name: "Webcam", Confidence: 0.61},
			}},
		}

		Convey("When the policy runs", func() {
			part, events, err := pol.Apply(context.Background(), scenes)
			So(err, ShouldBeNil)

			Convey("Then accepted plus uncertain equals predictions in", func() {
				total := model.PredictionCount(part.Accepted) + model.PredictionCount(part.Uncertain)
				So(total, ShouldEqual, model.PredictionCount(scenes))
			})

			Convey("And every uncertain prediction has exactly one event", func() {
				So(events, ShouldHaveLength, model.PredictionCount(part.Uncertain))
			})
		})
	})
}

func TestPolicyNew(t *testing.T) {
	Convey("Given threshold candidates", t, func() {
		Convey("When the threshold is outside [0,1]", func() {
			for _, bad := range []float64{-0.01, 1.01, 2} {
				_, err := policy.New(bad)
				So(err, ShouldWrap, policy.ErrInvalidThreshold)
			}
		})

		Convey("When the threshold sits on a boundary", func() {
			for _, ok := range []float64{0, 1, 0.90} {
				pol, err := policy.New(ok)
				So(err, ShouldBeNil)
				So(pol.Threshold(), ShouldEqual, ok)
			}
		})
	})
}
