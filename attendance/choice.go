package attendance

// Choice is the closed set of answers a user can give to an attendance
// poll. Attendee choices carry a head-count; Shadow is a non-counted
// observer slot.
type Choice int

const (
	ChoiceMe Choice = iota + 1
	ChoiceMePlusOne
	ChoiceMePlusTwo
	ChoiceMePlusThree
	ChoiceShadow
)

// WithdrawLabel is the action label offered next to the vote choices.
const WithdrawLabel = "Withdraw"

var choiceLabels = map[Choice]string{
	ChoiceMe:          "Me",
	ChoiceMePlusOne:   "Me +1",
	ChoiceMePlusTwo:   "Me +2",
	ChoiceMePlusThree: "Me +3",
	ChoiceShadow:      "Shadow",
}

var choiceWeights = map[Choice]int{
	ChoiceMe:          1,
	ChoiceMePlusOne:   2,
	ChoiceMePlusTwo:   3,
	ChoiceMePlusThree: 4,
	ChoiceShadow:      0,
}

func (c Choice) Label() string {
	return choiceLabels[c]
}

// Weight is the head-count a choice contributes. It is fixed per choice,
// there is no free-form count.
func (c Choice) Weight() int {
	return choiceWeights[c]
}

func (c Choice) IsShadow() bool {
	return c == ChoiceShadow
}

func (c Choice) known() bool {
	_, ok := choiceLabels[c]
	return ok
}

// ParseChoice maps a button label back to its choice.
func ParseChoice(label string) (Choice, error) {
	for c, l := range choiceLabels {
		if l == label {
			return c, nil
		}
	}
	return 0, ErrInvalidChoice
}

// AttendeeChoices lists the counted choices in display order.
func AttendeeChoices() []Choice {
	return []Choice{ChoiceMe, ChoiceMePlusOne, ChoiceMePlusTwo, ChoiceMePlusThree}
}
