package provider

// mockEchoLimit is the longest message prefix echoed back in a mock reply.
const mockEchoLimit = 100

// MockReply produces a deterministic placeholder reply used both when a
// provider is unconfigured and when the whole fallback chain is exhausted.
// It is a pure function: no network, no shared state, no randomness.
func MockReply(message, language, reason string) string {
	echoed := message
	marker := ""
	if runes := []rune(message); len(runes) > mockEchoLimit {
		echoed = string(runes[:mockEchoLimit])
		marker = "..."
	}

	if language == "ar" {
		return "[رد تجريبي - " + reason + "] لقد فهمت أنك قلت: \"" + echoed + marker + "\". قم بإعداد مفاتيح API للحصول على ردود الذكاء الاصطناعي الحقيقية! ✨"
	}
	return "[Mock AI - " + reason + "] I understand you said: \"" + echoed + marker + "\". Configure API keys for real AI responses! ✨"
}
