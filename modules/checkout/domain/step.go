package domain

// Step is one of the two checkout screens.
type Step int

const (
	Step1 Step = 1 // payment and address
	Step2 Step = 2 // email and phone
)

func ParseStep(n int) (Step, error) {
	s := Step(n)
	if !s.IsValid() {
		return 0, ErrInvalidStep
	}
	return s, nil
}

func (s Step) IsValid() bool { return s == Step1 || s == Step2 }

// Fields returns the order fields shown on the step.
func (s Step) Fields() []Field {
	if s == Step2 {
		return []Field{FieldEmail, FieldPhone}
	}
	return []Field{FieldPayment, FieldAddress}
}

// SubmitLabel is the caption of the step's submit control.
func (s Step) SubmitLabel() string {
	if s == Step2 {
		return "Pay"
	}
	return "Next"
}

func (s Step) String() string {
	if s == Step2 {
		return "contacts"
	}
	return "order"
}
