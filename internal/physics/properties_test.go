package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/physics"
	"github.com/san-kum/sandbox2d/internal/vec"
)

func momentum(bodies []*body.Body) vec.Vec2 {
	var p vec.Vec2
	for _, b := range bodies {
		p.Add(b.Velocity.Scaled(b.Mass))
	}
	return p
}

var _ = Describe("pairwise models", func() {
	models := map[string]func() physics.ForceModel{
		"space":    func() physics.ForceModel { return physics.NewPairwiseGravity() },
		"particle": func() physics.ForceModel { return physics.NewGroupedAttraction(nil) },
	}

	for name, build := range models {
		name, build := name, build

		Context(name, func() {
			It("applies no force between coincident bodies", func() {
				a, b := physics.PointAt(200, 200, 1e12), physics.PointAt(200, 200, 5e11)
				var lines []physics.DebugLine
				ctx := physics.SceneOf(1000, 1000)
				ctx.Debug, ctx.Sink = true, physics.Collect(&lines)

				build().Apply(0.5, []*body.Body{a, b}, ctx)

				Expect(a.Velocity).To(Equal(vec.Zero()))
				Expect(b.Velocity).To(Equal(vec.Zero()))
				Expect(lines).To(BeEmpty())
			})

			It("conserves momentum for every pair", func() {
				bodies := []*body.Body{
					physics.PointAt(300, 300, 1),
					physics.PointAt(340, 330, 3),
					physics.PointAt(260, 390, 0.7),
				}
				before := momentum(bodies)

				build().Apply(0.001, bodies, physics.SceneOf(1000, 1000))

				after := momentum(bodies)
				scale := 0.0
				for _, b := range bodies {
					scale = math.Max(scale, b.Velocity.Scaled(b.Mass).Magnitude())
				}
				Expect(scale).To(BeNumerically(">", 0))
				Expect(after.Minus(before).Magnitude()).To(BeNumerically("<=", scale*1e-12))
			})

			It("gives equal and opposite impulses to a single pair", func() {
				a, b := physics.PointAt(300, 300, 2), physics.PointAt(360, 380, 5)

				build().Apply(0.001, []*body.Body{a, b}, physics.SceneOf(1000, 1000))

				pa := a.Velocity.Scaled(a.Mass)
				pb := b.Velocity.Scaled(b.Mass)
				Expect(pa.Magnitude()).To(BeNumerically(">", 0))
				Expect(pa.X).To(BeNumerically("~", -pb.X, math.Abs(pa.X)*1e-12))
				Expect(pa.Y).To(BeNumerically("~", -pb.Y, math.Abs(pa.Y)*1e-12))
			})
		})
	}
})

var _ = Describe("boundaries", func() {
	It("keeps every extent inside the scene for the uniform field", func() {
		bodies := []*body.Body{
			body.NewCircle(-40, 300, 15),
			body.NewCircle(850, -20, 25),
			body.Rectangle(400, 900, 60, 30),
			body.Triangle(790, 590, 40, 40),
			physics.PointAt(900, 900, 1),
		}
		bodies[0].Velocity = vec.New(-200, 0)
		bodies[1].Velocity = vec.New(300, -500)

		physics.NewUniformField().Apply(0.05, bodies, physics.SceneOf(800, 600))

		for _, b := range bodies {
			ex, ey := b.Extent(body.AxisX), b.Extent(body.AxisY)
			Expect(b.X()).To(BeNumerically(">=", ex))
			Expect(b.X()).To(BeNumerically("<=", 800-ex))
			Expect(b.Y()).To(BeNumerically(">=", ey))
			Expect(b.Y()).To(BeNumerically("<=", 600-ey))
		}
	})

	DescribeTable("point models clamp to [0, dim]",
		func(build func() physics.ForceModel) {
			bodies := []*body.Body{physics.PointAt(-10, 50, 1), physics.PointAt(50, 120, 1), physics.PointAt(130, -5, 1)}
			bodies[1].Group, bodies[2].Group = "g", "g"
			for _, b := range bodies {
				b.Shape = body.Circle{Radius: 30}
			}

			build().Apply(0.1, bodies, physics.SceneOf(100, 100))

			for _, b := range bodies {
				Expect(b.X()).To(BeNumerically(">=", 0))
				Expect(b.X()).To(BeNumerically("<=", 100))
				Expect(b.Y()).To(BeNumerically(">=", 0))
				Expect(b.Y()).To(BeNumerically("<=", 100))
			}
			Expect(bodies[0].X()).To(Equal(0.0))
			Expect(bodies[1].Y()).To(Equal(100.0))
			Expect(bodies[2].X()).To(Equal(100.0))
			Expect(bodies[2].Y()).To(Equal(0.0))
		},
		Entry("space", func() physics.ForceModel { return physics.NewPairwiseGravity() }),
		Entry("particle", func() physics.ForceModel { return physics.NewGroupedAttraction(nil) }),
		Entry("space-bh", func() physics.ForceModel { return physics.NewApproxGravity() }),
	)

	It("inverts and damps the velocity of a clamped axis", func() {
		b := physics.PointAt(50, 50, 1)
		b.Velocity = vec.New(-400, 0)
		b.Elasticity = 0.25

		physics.NewPairwiseGravity().Apply(1, []*body.Body{b}, physics.SceneOf(100, 100))

		Expect(b.X()).To(Equal(0.0))
		Expect(b.VX()).To(Equal(100.0))
	})
})

var _ = Describe("grouped attraction cutoff", func() {
	run := func(dx, dy float64) (*body.Body, *body.Body) {
		a := physics.ParticleAt(100, 100, "g")
		b := physics.ParticleAt(100+dx, 100+dy, "g")
		physics.NewGroupedAttraction(nil).Apply(0.01, []*body.Body{a, b}, physics.SceneOf(1000, 1000))
		return a, b
	}

	It("ignores pairs beyond the interaction radius", func() {
		a, b := run(250, 0.1)
		Expect(a.Velocity).To(Equal(vec.Zero()))
		Expect(b.Velocity).To(Equal(vec.Zero()))
	})

	It("still interacts exactly at the radius", func() {
		a, b := run(250, 0)
		Expect(a.VX()).To(BeNumerically(">", 0))
		Expect(b.VX()).To(BeNumerically("<", 0))
	})
})

var _ = Describe("attraction table", func() {
	It("registers groups idempotently", func() {
		t := physics.NewAttractionTable()
		Expect(t.Register("red")).To(BeTrue())
		Expect(t.Register("blue")).To(BeTrue())
		Expect(t.Set("red", "blue", -3)).To(Succeed())

		before := t.Rules()
		Expect(t.Register("red")).To(BeFalse())
		Expect(t.Rules()).To(Equal(before))
	})

	It("back-fills every existing group with the default", func() {
		t := physics.NewAttractionTable()
		t.Register("a")
		t.Register("b")
		t.Register("c")

		for _, from := range t.Groups() {
			for _, to := range t.Groups() {
				v, err := t.Lookup(from, to)
				Expect(err).NotTo(HaveOccurred())
				Expect(v).To(Equal(physics.DefaultAttraction))
			}
		}
		Expect(t.Rules()).To(HaveLen(9))
	})
})

var _ = Describe("end to end", func() {
	It("pulls two equal bodies together with G = 1", func() {
		p := physics.NewPairwiseGravity()
		p.G = 1
		a, b := physics.PointAt(0, 0, 1), physics.PointAt(100, 0, 1)
		e := physics.NewEngine(p)

		e.Step(1, []*body.Body{a, b}, physics.SceneOf(1000, 1000))

		Expect(a.VX()).To(BeNumerically(">", 0))
		Expect(b.VX()).To(BeNumerically("<", 0))
		Expect(a.VX()).To(BeNumerically("~", -b.VX(), 1e-18))
	})

	It("pins a point body past the right wall in the uniform field", func() {
		const width, height = 800.0, 600.0
		b := physics.PointAt(width+50, 300, 1)
		b.Velocity = vec.New(120, 0)
		b.Elasticity = 0.5
		e, err := physics.New(physics.ModeEarth, nil)
		Expect(err).NotTo(HaveOccurred())

		e.Step(0.016, []*body.Body{b}, physics.SceneOf(width, height))

		Expect(b.X()).To(Equal(width))
		Expect(b.VX()).To(Equal(-60.0))
	})
})
