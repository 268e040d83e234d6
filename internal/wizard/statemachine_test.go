package wizard

import (
	"context"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/stepform/internal/form"
)

var complete = form.State{
	FirstName:  "Ada",
	LastName:   "Lovelace",
	Email:      "ada@example.com",
	Occupation: "Engineer",
	City:       "London",
	Bio:        "...",
}

var _ = Describe("Controller state machine", func() {
	var (
		ctx  context.Context
		sink *captureSink
		c    *Controller
	)

	BeforeEach(func() {
		ctx = context.Background()
		sink = &captureSink{}
		c = New(sink)
	})

	Context("with every required field filled", func() {
		BeforeEach(func() {
			for _, spec := range form.Fields() {
				Expect(c.Set(spec.Name, complete.Get(spec.Name))).To(Succeed())
			}
		})

		It("keeps the step within bounds and moves by one for any navigation sequence", func() {
			rng := rand.New(rand.NewSource(GinkgoRandomSeed()))
			for i := 0; i < 500; i++ {
				before := c.Step()
				var err error
				if rng.Intn(2) == 0 {
					err = c.Advance(ctx)
				} else {
					err = c.Retreat(ctx)
				}
				after := c.Step()

				Expect(after).To(BeNumerically(">=", StepPersonal))
				Expect(after).To(BeNumerically("<=", StepReview))
				delta := int(after) - int(before)
				Expect(delta).To(BeElementOf(-1, 0, 1))
				if err != nil {
					Expect(err).To(MatchError(ErrInvalidTransition))
					Expect(delta).To(Equal(0))
				} else {
					Expect(delta).NotTo(Equal(0))
				}
			}
			Expect(c.Submitted()).To(BeFalse())
		})

		It("hands the record unchanged to the sink on submit", func() {
			Expect(c.Advance(ctx)).To(Succeed())
			Expect(c.Advance(ctx)).To(Succeed())
			Expect(c.Submit(ctx)).To(Succeed())

			Expect(c.Submitted()).To(BeTrue())
			Expect(sink.got).To(ConsistOf(complete))
		})
	})

	Context("with an empty record", func() {
		It("never leaves step 1", func() {
			for i := 0; i < 5; i++ {
				err := c.Advance(ctx)
				var ve *form.ValidationError
				Expect(err).To(BeAssignableToTypeOf(ve))
				Expect(c.Step()).To(Equal(StepPersonal))
			}
		})
	})

	DescribeTable("reset returns to the initial state",
		func(advances int, submit bool) {
			for _, spec := range form.Fields() {
				Expect(c.Set(spec.Name, complete.Get(spec.Name))).To(Succeed())
			}
			for i := 0; i < advances; i++ {
				Expect(c.Advance(ctx)).To(Succeed())
			}
			if submit {
				Expect(c.Submit(ctx)).To(Succeed())
			}

			Expect(c.Reset(ctx)).To(Succeed())
			Expect(c.State()).To(Equal(State{Step: StepPersonal}))
			Expect(c.Form()).To(Equal(form.State{}))
		},
		Entry("from step 1", 0, false),
		Entry("from step 2", 1, false),
		Entry("from step 3", 2, false),
		Entry("from submitted", 2, true),
	)

	Describe("progress indicator", func() {
		It("marks earlier steps complete and later steps upcoming", func() {
			for _, spec := range form.Fields() {
				Expect(c.Set(spec.Name, complete.Get(spec.Name))).To(Succeed())
			}
			Expect(c.Advance(ctx)).To(Succeed())

			var states []StepState
			for _, s := range c.Progress() {
				states = append(states, s.State)
			}
			Expect(states).To(Equal([]StepState{StepComplete, StepCurrent, StepUpcoming}))
		})

		It("marks everything complete after submit", func() {
			for _, s := range Progress(StepReview, true) {
				Expect(s.State).To(Equal(StepComplete))
			}
		})
	})
})
