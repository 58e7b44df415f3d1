package test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/AlvinMunny27/Payizi-SA-Beta/internal"
	"github.com/AlvinMunny27/Payizi-SA-Beta/internal/model"
)

var _ = Describe("StatusResolver", func() {
	Context("known statuses", func() {
		type row struct {
			status   string
			progress int
			class    string
			step     int
		}

		rows := []row{
			{"pending", 20, model.ColorWarning, 1},
			{"pending payment", 20, model.ColorWarning, 1},
			{"payment received", 40, model.ColorInfo, 2},
			{"paid", 40, model.ColorInfo, 2},
			{"payment confirmed", 60, model.ColorPrimary, 3},
			{"processing", 60, model.ColorPrimary, 3},
			{"sent to beneficiary", 80, model.ColorSuccess, 4},
			{"completed", 100, model.ColorSuccess, 5},
			{"cancelled", 0, model.ColorDanger, 0},
			{"failed", 20, model.ColorDanger, 1},
		}

		It("resolves every table row", func() {
			for _, r := range rows {
				ds := internal.ResolveStatus(r.status)
				Expect(ds.ProgressPercent).Should(Equal(r.progress), r.status)
				Expect(ds.ColorClass).Should(Equal(r.class), r.status)
				Expect(ds.TimelineStep).Should(Equal(r.step), r.status)
				Expect(ds.Label).Should(Equal(r.status))
			}
		})

		It("ignores casing and surrounding whitespace", func() {
			ds := internal.ResolveStatus("  Payment Confirmed \t")
			Expect(ds.ProgressPercent).Should(Equal(60))
			Expect(ds.ColorClass).Should(Equal(model.ColorPrimary))
			Expect(ds.TimelineStep).Should(Equal(3))
		})

		It("keeps the caller's casing on the label", func() {
			ds := internal.ResolveStatus("  Sent To Beneficiary ")
			Expect(ds.Label).Should(Equal("Sent To Beneficiary"))
		})

		It("is pure", func() {
			Expect(internal.ResolveStatus("Completed")).Should(Equal(internal.ResolveStatus("Completed")))
		})
	})

	Context("unknown statuses", func() {
		It("falls back to the default row", func() {
			for _, s := range []string{"", "   ", "awaiting courier", "REFUND-IN-PROGRESS", "999"} {
				ds := internal.ResolveStatus(s)
				Expect(ds.ProgressPercent).Should(Equal(0), s)
				Expect(ds.ColorClass).Should(Equal(model.ColorNeutral), s)
				Expect(ds.TimelineStep).Should(Equal(0), s)
			}
		})
	})

	Context("terminal statuses", func() {
		It("treats completed, cancelled and failed as terminal", func() {
			Expect(internal.IsTerminalStatus("Completed")).Should(BeTrue())
			Expect(internal.IsTerminalStatus(" cancelled ")).Should(BeTrue())
			Expect(internal.IsTerminalStatus("FAILED")).Should(BeTrue())
			Expect(internal.IsTerminalStatus("processing")).Should(BeFalse())
			Expect(internal.IsTerminalStatus("pending payment")).Should(BeFalse())
		})
	})
})
