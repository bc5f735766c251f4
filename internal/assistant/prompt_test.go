package assistant_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/shelfwatch/internal/assistant"
	"github.com/okian/shelfwatch/internal/domain/model"
	"github.com/okian/shelfwatch/internal/domain/types"
)

func inventoryFixture() []model.InventoryRecord {
	return []model.InventoryRecord{
		{ID: 1, Name: "Arduino Kit", Quantity: 5, Category: "Hardware", Status: types.StatusAvailable},
		{ID: 2, Name: "Monitor Stand", Quantity: 8, Category: "Furniture", Status: types.StatusUnavailable},
	}
}

func TestBuild(t *testing.T) {
	Convey("Given a builder with a threshold of 10", t, func() {
		b := assistant.NewBuilder(10)

		Convey("When building a prompt", func() {
			prompt, err := b.Build("Which hardware items are low stock?", inventoryFixture())
			So(err, ShouldBeNil)

			Convey("Then the system prompt embeds the inventory as JSON", func() {
				So(prompt.System, ShouldContainSubstring, `"name": "Arduino Kit"`)
				So(prompt.System, ShouldContainSubstring, `"quantity": 5`)
			})

			Convey("Then the guardrails and threshold are spelled out", func() {
				So(prompt.System, ShouldContainSubstring, "quantity < 10")
				So(prompt.System, ShouldContainSubstring, "CANNOT modify, add, or delete")
				So(prompt.System, ShouldContainSubstring, "I don't have information about that item")
			})

			Convey("Then the user query passes through untouched", func() {
				So(prompt.User, ShouldEqual, "Which hardware items are low stock?")
				So(prompt.Inventory, ShouldResemble, inventoryFixture())
			})
		})
	})
}

func TestFormatContext(t *testing.T) {
	Convey("Given a builder with a threshold of 10", t, func() {
		b := assistant.NewBuilder(10)

		Convey("When formatting the inventory as plain text", func() {
			out := b.FormatContext(inventoryFixture())

			Convey("Then availability markers match record status", func() {
				So(out, ShouldContainSubstring, "[available] Arduino Kit")
				So(out, ShouldContainSubstring, "[unavailable] Monitor Stand")
			})

			Convey("Then only below-threshold items carry the LOW flag", func() {
				So(out, ShouldContainSubstring, "Quantity: 5 LOW")
				So(out, ShouldContainSubstring, "Quantity: 8 LOW")
			})
		})

		Convey("When every item is at or above the threshold", func() {
			out := assistant.NewBuilder(3).FormatContext(inventoryFixture())

			Convey("Then no LOW flag appears", func() {
				So(out, ShouldNotContainSubstring, "LOW")
			})
		})
	})
}

func TestExampleQueries(t *testing.T) {
	Convey("Given the canned demo queries", t, func() {
		Convey("Then each renders through the builder without error", func() {
			b := assistant.NewBuilder(10)
			for _, q := range assistant.ExampleQueries {
				prompt, err := b.Build(q, inventoryFixture())
				So(err, ShouldBeNil)
				So(prompt.User, ShouldEqual, q)
			}
		})
	})
}
