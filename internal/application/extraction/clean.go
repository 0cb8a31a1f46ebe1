package extraction

import "strings"

// CleanJSONResponse reduces a model response to the bare JSON object it
// contains.  Markdown code fences are stripped, then the substring from the
// first opening brace to its balanced closing brace is extracted.  If no
// balanced object is found the trimmed input is returned as-is and left for
// the JSON parser to reject.
func CleanJSONResponse(response string) string {
	s := strings.TrimSpace(response)
	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx != -1 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
			s = strings.TrimPrefix(s, "json")
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
	}

	start := strings.IndexByte(s, '{')
	if start == -1 {
		return s
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s
}

// Keyword patterns that mark a document as trademark-related.  Includes the
// non-English terms seen in real filings.
var trademarkPatterns = []string{
	"trademark", "trade mark", "registered trademark", "™", "®",
	"patent", "copyright", "intellectual property", "brand",
	"logo", "service mark", "certification mark", "collective mark",
	"registration", "application", "申请", "商标", "ट्रेडमार्क",
	"marca registrada", "marque déposée", "marchio registrato",
}

// ClassifyDocument labels extracted document text.  The heuristic is
// deliberately permissive: anything not obviously something else is treated
// as a trademark document, since that is the only document kind this service
// ingests.
func ClassifyDocument(text string) string {
	lower := strings.ToLower(text)
	for _, p := range trademarkPatterns {
		if strings.Contains(lower, p) {
			return "trademark"
		}
	}
	if (strings.Contains(lower, "registration") && (strings.Contains(lower, "number") || strings.Contains(lower, "no"))) ||
		(strings.Contains(lower, "application") && (strings.Contains(lower, "filed") || strings.Contains(lower, "date"))) ||
		(strings.Contains(lower, "mark") && (strings.Contains(lower, "owner") || strings.Contains(lower, "applicant"))) {
		return "trademark"
	}
	return "trademark"
}
