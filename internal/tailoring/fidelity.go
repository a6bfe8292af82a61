package tailoring

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// datePattern matches date-like tokens: month-name forms ("Jan 2021",
// "September 2019"), numeric month/year ("03/2022"), and bare four-digit
// years. Month-name forms are tried first so their year is not re-counted
// as a standalone token.
var datePattern = regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t|tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(?:19|20)\d{2}\b|\b\d{1,2}/(?:19|20)\d{2}\b|\b(?:19|20)\d{2}\b`)

// DateTokens extracts the set of date-like tokens in doc, normalized to
// lowercase with single spaces so that formatting churn does not register
// as a content change.
func DateTokens(doc string) map[string]struct{} {
	tokens := map[string]struct{}{}
	for _, m := range datePattern.FindAllString(doc, -1) {
		normalized := strings.Join(strings.Fields(strings.ToLower(m)), " ")
		tokens[normalized] = struct{}{}
	}
	return tokens
}

// checkDateFidelity verifies the no-fabrication contract over dates: the
// tailored document must carry exactly the date tokens of the master. A
// dropped date means factual content was removed; a new one means it was
// invented.
func checkDateFidelity(master, tailored string) error {
	want := DateTokens(master)
	got := DateTokens(tailored)

	var dropped, invented []string
	for token := range want {
		if _, ok := got[token]; !ok {
			dropped = append(dropped, token)
		}
	}
	for token := range got {
		if _, ok := want[token]; !ok {
			invented = append(invented, token)
		}
	}
	if len(dropped) == 0 && len(invented) == 0 {
		return nil
	}

	sort.Strings(dropped)
	sort.Strings(invented)
	var parts []string
	if len(dropped) > 0 {
		parts = append(parts, fmt.Sprintf("dropped dates %s", strings.Join(dropped, ", ")))
	}
	if len(invented) > 0 {
		parts = append(parts, fmt.Sprintf("invented dates %s", strings.Join(invented, ", ")))
	}
	return fmt.Errorf("generated resume altered dated entries: %s", strings.Join(parts, "; "))
}
