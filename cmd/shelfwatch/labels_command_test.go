package main

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/shelfwatch/internal/domain/classify"
)

func TestSampleItems(t *testing.T) {
	Convey("Given a seeded generator", t, func() {
		rng := rand.New(rand.NewSource(1)) //nolint:gosec // demo data, not crypto

		Convey("When drawing many subsets", func() {
			sawFull := false
			for i := 0; i < 500; i++ {
				items := sampleItems(rng)
				So(len(items), ShouldBeBetweenOrEqual, 1, len(classify.KnownItems))

				seen := make(map[string]bool, len(items))
				for _, item := range items {
					So(seen[item], ShouldBeFalse)
					seen[item] = true
				}
				if len(items) == len(classify.KnownItems) {
					sawFull = true
				}
			}

			Convey("Then a fully stocked shelf is reachable", func() {
				So(sawFull, ShouldBeTrue)
			})
		})
	})
}
