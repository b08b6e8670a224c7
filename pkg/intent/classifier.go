package intent

import (
	"regexp"
	"strings"
)

// Intent is the classified purpose of one user message.
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentIntroduceSelf Intent = "introduce_self"
	IntentRepairRequest Intent = "repair_request"
	IntentSelection     Intent = "selection"
	IntentAffirmative   Intent = "affirmative"
	IntentNegative      Intent = "negative"
	IntentReset         Intent = "reset"
	IntentUnknown       Intent = "unknown"
)

// Classifier maps free text to an Intent. Implementations can be rule-based
// or model-backed; the conversation controller only sees this interface.
type Classifier interface {
	Classify(text string) Intent
}

var (
	greetingRe  = regexp.MustCompile(`^(hi|hello|hey|good (morning|afternoon|evening)|start|begin)\b`)
	selectionRe = regexp.MustCompile(`^\d+([\s,]+\d+)*$`)
	pickVerbRe  = regexp.MustCompile(`\b(select|choose|pick|service \d|option \d|number \d)`)
)

var repairKeywords = []string{
	"fix", "tear", "hole", "repair", "zipper", "seam", "broken", "damage",
	"torn", "rip", "worn", "stain", "alter", "adjust", "shorten", "lengthen",
	"take in", "take out", "button", "hem", "sleeve", "patch", "sole", "heel",
}

var affirmativePhrases = []string{
	"yes", "yeah", "yep", "sure", "confirm", "looks good", "that's right",
	"correct", "approve", "create order", "proceed", "ok", "okay",
}

var negativePhrases = []string{
	"no more", "that's all", "no additional", "no other", "just these",
	"no thanks", "nothing else", "no", "nope",
}

var resetKeywords = []string{
	"cancel", "nevermind", "never mind", "stop", "quit", "exit", "reset", "start over",
}

// RuleClassifier is the default keyword/pattern implementation.
type RuleClassifier struct{}

func NewRuleClassifier() Classifier {
	return &RuleClassifier{}
}

// Classify checks patterns in fixed precedence. Reset wins over everything so
// "cancel" always escapes the flow, and bare index lists are read as
// selections before anything else gets a chance to misfire.
func (c *RuleClassifier) Classify(text string) Intent {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return IntentUnknown
	}

	for _, kw := range resetKeywords {
		if strings.Contains(t, kw) {
			return IntentReset
		}
	}

	if selectionRe.MatchString(t) || pickVerbRe.MatchString(t) {
		return IntentSelection
	}

	if greetingRe.MatchString(t) {
		return IntentGreeting
	}

	if strings.Contains(t, "my name is") || strings.HasPrefix(t, "i am ") || strings.HasPrefix(t, "i'm ") {
		return IntentIntroduceSelf
	}

	for _, kw := range repairKeywords {
		if strings.Contains(t, kw) {
			return IntentRepairRequest
		}
	}

	for _, phrase := range negativePhrases {
		if phrase == t || strings.Contains(t, phrase+" ") || strings.HasSuffix(t, " "+phrase) || strings.HasPrefix(t, phrase+",") {
			return IntentNegative
		}
	}

	for _, phrase := range affirmativePhrases {
		if phrase == t || strings.Contains(t, phrase) {
			return IntentAffirmative
		}
	}

	return IntentUnknown
}
