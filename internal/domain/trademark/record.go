package trademark

import "strings"

// Record is one trademark record: a mapping from field name to string value.
// Two shapes occur in practice: extracted records produced by the document
// extraction collaborator and ledger records loaded from the registered
// corpus.  No schema is enforced beyond the recognized key sets; unknown keys
// are preserved opaquely.  The engine never mutates a Record.
type Record map[string]string

// Keys of the extracted record shape.
const (
	KeyName               = "name"
	KeyTextInLogo         = "text_in_logo"
	KeyRegistrationNumber = "registration_number"
	KeyBusinessCategory   = "business_category"
	KeyLegalStatus        = "legal_status"
)

// Keys of the ledger record shape.
const (
	LedgerKeyApplicant     = "Client / Applicant"
	LedgerKeyApplicationNo = "Application No."
	LedgerKeyTrademark     = "Trademark"
	LedgerKeyLogo          = "Logo"
	LedgerKeyClass         = "Class"
	LedgerKeyStatus        = "Status"
	LedgerKeyValidity      = "Validity"
)

// first returns the value of the first key that is present with a non-empty
// value, or "".  Values are used verbatim; only all-whitespace values count
// as empty.
func (r Record) first(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// A new record may arrive in either shape: extracted keys are preferred with
// the ledger keys as fallback.  Stored records are always ledger-shaped.
// This asymmetry is deliberate and must be preserved.

// ResolveNewName returns the applicant name of a new record.
func ResolveNewName(r Record) string {
	return r.first(KeyName, LedgerKeyApplicant)
}

// ResolveNewTrademark returns the trademark text (stylized logo text) of a
// new record.
func ResolveNewTrademark(r Record) string {
	return r.first(KeyTextInLogo, LedgerKeyTrademark)
}

// ResolveNewApplicationNo returns the application or registration number of a
// new record.
func ResolveNewApplicationNo(r Record) string {
	return r.first(KeyRegistrationNumber, LedgerKeyApplicationNo)
}

// ResolveNewClass returns the business category / class of a new record.
func ResolveNewClass(r Record) string {
	return r.first(KeyBusinessCategory, LedgerKeyClass)
}

// ResolveNewStatus returns the legal status of a new record.
func ResolveNewStatus(r Record) string {
	return r.first(KeyLegalStatus, LedgerKeyStatus)
}

// ResolveStoredName returns the applicant name of a stored (ledger-shaped)
// record.
func ResolveStoredName(r Record) string {
	return r.first(LedgerKeyApplicant)
}

// ResolveStoredTrademark returns the trademark text of a stored record.  When
// the Trademark column is empty or absent the applicant name is substituted
// and fallback is true, so that records registered without stylized text are
// still comparable.
func ResolveStoredTrademark(r Record) (text string, fallback bool) {
	if v := r.first(LedgerKeyTrademark); v != "" {
		return v, false
	}
	return ResolveStoredName(r), true
}
