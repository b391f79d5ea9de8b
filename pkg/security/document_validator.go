package security

import "strings"

// DocumentOwner selects which extension allow-list applies.
type DocumentOwner int

const (
	YouthDocument DocumentOwner = iota
	OrganizationDocument
)

// MaxDocumentSizeBytes is the upload ceiling for both owner types (5 MiB).
const MaxDocumentSizeBytes = 5 * 1024 * 1024

// Extension allow-lists (strict whitelist, lowercase suffix match).
var (
	youthExtensions = []string{".pdf", ".doc", ".docx"}
	orgExtensions   = []string{".pdf", ".png", ".jpg", ".jpeg"}
)

// DocumentValidationResult reports the outcome of metadata validation.
// Message is set only on failure and carries exactly one reason.
type DocumentValidationResult struct {
	Valid   bool
	Message string
}

// ValidateDocumentMetadata checks an upload's metadata before any storage
// happens. Checks run in a fixed order and the first failure wins:
// file name presence, extension allow-list, size positivity, size ceiling.
func ValidateDocumentMetadata(owner DocumentOwner, fileName string, sizeInBytes int64) DocumentValidationResult {
	if fileName == "" {
		return DocumentValidationResult{Message: "fileName is required"}
	}

	lower := strings.ToLower(fileName)

	allowed := youthExtensions
	extensionError := "Invalid file type. Only PDF, DOC, and DOCX are allowed."
	if owner == OrganizationDocument {
		allowed = orgExtensions
		extensionError = "Invalid file type. Only PDF and image files are allowed."
	}

	hasAllowedExtension := false
	for _, ext := range allowed {
		if strings.HasSuffix(lower, ext) {
			hasAllowedExtension = true
			break
		}
	}
	if !hasAllowedExtension {
		return DocumentValidationResult{Message: extensionError}
	}

	if sizeInBytes <= 0 {
		return DocumentValidationResult{Message: "sizeInBytes must be a positive number"}
	}

	if sizeInBytes > MaxDocumentSizeBytes {
		return DocumentValidationResult{Message: "File size exceeds 5MB limit."}
	}

	return DocumentValidationResult{Valid: true}
}
