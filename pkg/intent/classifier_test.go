package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{name: "hello", text: "Hello!", want: IntentGreeting},
		{name: "hi there", text: "hi there", want: IntentGreeting},
		{name: "good morning", text: "Good morning", want: IntentGreeting},

		{name: "name intro", text: "My name is Kari", want: IntentIntroduceSelf},
		{name: "i am intro", text: "I am Ola", want: IntentIntroduceSelf},
		{name: "contracted intro", text: "I'm Nina", want: IntentIntroduceSelf},

		{name: "torn jacket", text: "my jacket has a tear on the sleeve", want: IntentRepairRequest},
		{name: "broken zipper", text: "the zipper on my bag is broken", want: IntentRepairRequest},
		{name: "hem request", text: "can you hem these trousers", want: IntentRepairRequest},

		{name: "bare index", text: "2", want: IntentSelection},
		{name: "comma separated", text: "1, 3", want: IntentSelection},
		{name: "space separated", text: "1 2 3", want: IntentSelection},
		{name: "pick verb", text: "I pick option 2", want: IntentSelection},

		{name: "yes", text: "yes", want: IntentAffirmative},
		{name: "confirm", text: "confirm the order", want: IntentAffirmative},
		{name: "looks good", text: "looks good to me", want: IntentAffirmative},

		{name: "no", text: "no", want: IntentNegative},
		{name: "nothing else", text: "nothing else, thanks", want: IntentNegative},
		{name: "thats all", text: "that's all", want: IntentNegative},

		{name: "cancel", text: "cancel", want: IntentReset},
		{name: "start over", text: "let's start over", want: IntentReset},
		{name: "cancel beats repair", text: "cancel the zipper repair", want: IntentReset},

		{name: "gibberish", text: "qwerty asdf", want: IntentUnknown},
		{name: "empty", text: "   ", want: IntentUnknown},
	}

	c := NewRuleClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "My name is kari", want: "Kari"},
		{text: "i'm ola and my jacket is torn", want: "Ola"},
		{text: "call me NINA", want: "Nina"},
		{text: "hello there", want: ""},
	}

	for _, tt := range tests {
		if got := ExtractName(tt.text); got != tt.want {
			t.Errorf("ExtractName(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
