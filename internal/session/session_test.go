package session_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"blockgol/internal/core"
	"blockgol/internal/sims/life"
	"blockgol/internal/session"
	"blockgol/internal/sizing"
)

// A 60x60 canvas with 10px blocks gives a 6x6 world.
func newController() *session.Controller {
	layout, err := sizing.Fit(60, 60, 36)
	Expect(err).NotTo(HaveOccurred())
	Expect(layout.BlockSize).To(Equal(10))
	return session.New(layout, session.WithRNG(core.NewRNG(11)))
}

// pixel returns a canvas coordinate inside block (bx, by).
func pixel(bx, by int) (int, int) { return bx*10 + 3, by*10 + 3 }

func paint(c *session.Controller, cells ...[2]int) {
	c.Apply(session.PaintStart())
	for _, p := range cells {
		x, y := pixel(p[0], p[1])
		c.Apply(session.PaintMove(x, y))
	}
	c.Apply(session.PaintStop())
}

var _ = Describe("Controller", func() {
	var c *session.Controller

	BeforeEach(func() {
		c = newController()
	})

	Describe("initial state", func() {
		It("starts stopped, idle and without a snapshot over a random grid", func() {
			Expect(c.Running()).To(BeFalse())
			Expect(c.EditMode()).To(Equal(session.Idle))
			Expect(c.HasSnapshot()).To(BeFalse())
			Expect(c.Grid().Size()).To(Equal(core.Size{W: 6, H: 6}))
			Expect(c.Generation()).To(BeZero())
		})

		It("produces the same world for the same seed", func() {
			other := newController()
			Expect(other.Grid().Equal(c.Grid())).To(BeTrue())
		})
	})

	Describe("ToggleRun", func() {
		It("flips the running flag", func() {
			c.Apply(session.ToggleRun())
			Expect(c.Running()).To(BeTrue())
			c.Apply(session.ToggleRun())
			Expect(c.Running()).To(BeFalse())
		})

		It("does not evolve while stopped", func() {
			before := c.Grid().Clone()
			c.Tick(nil)
			Expect(c.Grid().Equal(before)).To(BeTrue())
			Expect(c.Generation()).To(BeZero())
		})
	})

	Describe("ticking", func() {
		It("applies commands before evolving", func() {
			c.Apply(session.Clear())
			paint(c, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

			quit := c.Tick([]session.Command{session.ToggleRun()})
			Expect(quit).To(BeFalse())
			Expect(c.Generation()).To(Equal(1))
			g := c.Grid()
			Expect(g.At(2, 1) && g.At(2, 2) && g.At(2, 3)).To(BeTrue())
			Expect(g.Population()).To(Equal(3))
		})

		It("matches the engine step for step", func() {
			start := c.Grid().Clone()
			c.Apply(session.ToggleRun())
			for i := 0; i < 5; i++ {
				c.Tick(nil)
				start = life.Evolve(start)
			}
			Expect(c.Grid().Equal(start)).To(BeTrue())
		})

		It("checkpoints the pre-run world on the first step", func() {
			before := c.Grid().Clone()
			c.Tick([]session.Command{session.ToggleRun()})
			Expect(c.HasSnapshot()).To(BeTrue())

			c.Tick(nil)
			c.Apply(session.RestoreSnapshot())
			Expect(c.Running()).To(BeFalse())
			Expect(c.Grid().Equal(before)).To(BeTrue())
			Expect(c.Generation()).To(BeZero())
		})

		It("keeps an explicit snapshot instead of overwriting it", func() {
			c.Apply(session.Clear())
			paint(c, [2]int{0, 0})
			c.Apply(session.SaveSnapshot())
			saved := c.Grid().Clone()

			paint(c, [2]int{4, 4}, [2]int{4, 5}, [2]int{5, 4})
			c.Tick([]session.Command{session.ToggleRun()})
			c.Tick(nil)
			c.Apply(session.RestoreSnapshot())
			Expect(c.Grid().Equal(saved)).To(BeTrue())
		})

		It("stops processing at Quit", func() {
			quit := c.Tick([]session.Command{session.ToggleRun(), session.Quit(), session.Clear()})
			Expect(quit).To(BeTrue())
			Expect(c.Generation()).To(BeZero())
			Expect(c.Grid().Population()).NotTo(BeZero())
		})
	})

	Describe("snapshots", func() {
		It("treats restore without a snapshot as a no-op", func() {
			before := c.Grid().Clone()
			c.Apply(session.RestoreSnapshot())
			Expect(c.Grid().Equal(before)).To(BeTrue())
			Expect(c.HasSnapshot()).To(BeFalse())
		})

		It("stops the simulation on restore even without a snapshot", func() {
			c.Apply(session.ToggleRun())
			c.Apply(session.RestoreSnapshot())
			Expect(c.Running()).To(BeFalse())
		})

		It("stores a deep copy on save", func() {
			c.Apply(session.Clear())
			c.Apply(session.SaveSnapshot())
			paint(c, [2]int{2, 2})

			c.Apply(session.RestoreSnapshot())
			Expect(c.Grid().Population()).To(BeZero())
		})

		It("restores a copy so later edits keep the snapshot intact", func() {
			c.Apply(session.Clear())
			c.Apply(session.SaveSnapshot())

			c.Apply(session.RestoreSnapshot())
			paint(c, [2]int{1, 1})
			c.Apply(session.RestoreSnapshot())
			Expect(c.Grid().Population()).To(BeZero())
		})
	})

	DescribeTable("world resets",
		func(cmd session.Command, wantEmpty bool) {
			c.Apply(session.SaveSnapshot())
			c.Apply(session.ToggleRun())
			c.Tick(nil)

			c.Apply(cmd)
			Expect(c.Running()).To(BeFalse())
			Expect(c.HasSnapshot()).To(BeFalse())
			Expect(c.Generation()).To(BeZero())
			Expect(c.Grid().Size()).To(Equal(core.Size{W: 6, H: 6}))
			if wantEmpty {
				Expect(c.Grid().Population()).To(BeZero())
			}
		},
		Entry("NewRandom", session.NewRandom(), false),
		Entry("Clear", session.Clear(), true),
	)

	Describe("painting and erasing", func() {
		BeforeEach(func() {
			c.Apply(session.Clear())
		})

		It("forces the simulation to stop", func() {
			c.Apply(session.ToggleRun())
			c.Apply(session.PaintStart())
			Expect(c.Running()).To(BeFalse())
			Expect(c.EditMode()).To(Equal(session.Painting))

			c.Apply(session.ToggleRun())
			c.Apply(session.EraseStart())
			Expect(c.Running()).To(BeFalse())
			Expect(c.EditMode()).To(Equal(session.Erasing))
		})

		It("is idempotent", func() {
			x, y := pixel(3, 3)
			c.Apply(session.PaintStart())
			c.Apply(session.PaintMove(x, y))
			once := c.Grid().Clone()
			c.Apply(session.PaintMove(x, y))
			Expect(c.Grid().Equal(once)).To(BeTrue())
			Expect(c.Grid().At(3, 3)).To(BeTrue())
		})

		It("ignores moves outside the matching mode", func() {
			x, y := pixel(1, 1)
			c.Apply(session.PaintMove(x, y))
			Expect(c.Grid().Population()).To(BeZero())

			c.Apply(session.EraseStart())
			c.Apply(session.PaintMove(x, y))
			Expect(c.Grid().Population()).To(BeZero())
		})

		It("erases painted cells", func() {
			paint(c, [2]int{1, 1}, [2]int{2, 1})
			x, y := pixel(1, 1)
			c.Apply(session.EraseStart())
			c.Apply(session.EraseMove(x, y))
			c.Apply(session.EraseMove(x, y))
			c.Apply(session.EraseStop())
			Expect(c.Grid().At(1, 1)).To(BeFalse())
			Expect(c.Grid().At(2, 1)).To(BeTrue())
			Expect(c.EditMode()).To(Equal(session.Idle))
		})

		It("clamps pointer positions at the canvas edge", func() {
			c.Apply(session.PaintStart())
			c.Apply(session.PaintMove(59, 59))
			c.Apply(session.PaintMove(200, -40))
			Expect(c.Grid().At(5, 5)).To(BeTrue())
			Expect(c.Grid().At(5, 0)).To(BeTrue())
			Expect(c.Grid().Population()).To(Equal(2))
		})

		It("returns to idle on release", func() {
			c.Apply(session.PaintStart())
			c.Apply(session.PaintStop())
			Expect(c.EditMode()).To(Equal(session.Idle))
			x, y := pixel(0, 0)
			c.Apply(session.PaintMove(x, y))
			Expect(c.Grid().Population()).To(BeZero())
		})
	})

	Describe("status and history", func() {
		It("summarises the controller", func() {
			c.Apply(session.SaveSnapshot())
			s := c.Status()
			Expect(s.HasSnapshot).To(BeTrue())
			Expect(s.Engine).To(Equal(life.EngineScan))
			Expect(s.BlocksX).To(Equal(6))
			Expect(s.Population).To(Equal(c.Grid().Population()))
			Expect(s.String()).To(ContainSubstring("paused"))
		})

		It("records one population sample per generation", func() {
			c.Apply(session.ToggleRun())
			for i := 0; i < 3; i++ {
				c.Tick(nil)
			}
			h := c.History()
			Expect(h).To(HaveLen(4))
			Expect(h[len(h)-1]).To(Equal(c.Grid().Population()))
		})

		It("bounds the history", func() {
			layout, _ := sizing.Fit(60, 60, 36)
			bounded := session.New(layout, session.WithHistory(2), session.WithRNG(core.NewRNG(5)))
			bounded.Apply(session.ToggleRun())
			for i := 0; i < 5; i++ {
				bounded.Tick(nil)
			}
			Expect(bounded.History()).To(HaveLen(2))
		})
	})

	Describe("evolver selection", func() {
		It("runs the convolution engine identically", func() {
			layout, _ := sizing.Fit(60, 60, 36)
			conv := session.New(layout,
				session.WithRNG(core.NewRNG(11)),
				session.WithEvolver(life.EngineConvolution, life.EvolveConvolution))
			Expect(conv.Grid().Equal(c.Grid())).To(BeTrue())

			c.Apply(session.ToggleRun())
			conv.Apply(session.ToggleRun())
			for i := 0; i < 4; i++ {
				c.Tick(nil)
				conv.Tick(nil)
			}
			Expect(conv.Grid().Equal(c.Grid())).To(BeTrue())
			Expect(conv.Status().Engine).To(Equal(life.EngineConvolution))
		})
	})
})

var _ = DescribeTable("KeyCommand",
	func(key string, want session.CommandKind, bound bool) {
		cmd, ok := session.KeyCommand(key)
		Expect(ok).To(Equal(bound))
		if bound {
			Expect(cmd.Kind).To(Equal(want))
		}
	},
	Entry("n", "n", session.CmdNewRandom, true),
	Entry("s", "s", session.CmdSaveSnapshot, true),
	Entry("r", "r", session.CmdRestoreSnapshot, true),
	Entry("space", "space", session.CmdToggleRun, true),
	Entry("c", "c", session.CmdClear, true),
	Entry("esc", "esc", session.CmdQuit, true),
	Entry("b is not bound", "b", session.CmdNone, false),
	Entry("x is not bound", "x", session.CmdNone, false),
)
