package constant

// Watermill topic for async catalog embedding.
const EmbedServiceTopic = "EMBED_SERVICE_ROW"

// Agent reply templates. %s / %d placeholders are filled by the agent service.
const (
	ReplyGreeting = "👋 Hi there! I'm here to help you create repair orders.\n\nWhat garment needs fixing today? Please describe the item and what's wrong with it."

	ReplyNiceToMeet = "Nice to meet you, %s! 😊\n\nWhat garment needs fixing today? Please describe the item and the damage you see."

	ReplySuggestions = "Based on your description, here are the top %d suggested repair services. Reply with the numbers of the ones you want (e.g. \"1, 3\")."

	ReplyNoMatches = "I couldn't find any matching services for your request. Could you try describing the garment and damage differently?"

	ReplySelected = "✅ Great! Added %d service(s) to your order.\n\nWould you like to add any other services? (Yes/No)"

	ReplyDescribeManual = "Please describe the additional service you'd like to add:"

	ReplySummary = "📋 Order summary: %d service(s), total $%.0f.\n\nDo you want to confirm and create this order?"

	ReplyOrderCreated = "🎉 Order %s created successfully! Total: $%.0f.\n\nWould you like to create another order?"

	ReplyOrderDiscarded = "Order discarded. Feel free to start over whenever you're ready!"

	ReplyCancelled = "❌ Session reset. Feel free to start over whenever you're ready!"

	ReplyReprompt = "Please select a service from the options above, using the numbers shown (e.g. \"1, 3\")."

	ReplyConfirmPrompt = "Please answer Yes or No to confirm the order."

	ReplyFallback = "I didn't quite understand that. Could you describe the garment and what needs fixing?"

	ReplyEmptyDraft = "No services selected yet. Please start by describing what needs repair."
)
