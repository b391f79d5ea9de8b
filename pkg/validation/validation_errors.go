package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Auth fields
	"Name":     "Name",
	"Email":    "Email",
	"Password": "Password",
	"Role":     "Role",

	// Youth profile fields
	"FullName":                   "Full Name",
	"ContactNumber":              "Contact Number",
	"DateOfBirth":                "Date of Birth",
	"Gender":                     "Gender",
	"District":                   "District",
	"ProvinceOrState":            "Province or State",
	"HighestQualification":       "Highest Qualification",
	"InstitutionName":            "Institution Name",
	"FieldOfStudy":               "Field of Study",
	"GraduationYear":             "Graduation Year",
	"TechnicalSkills":            "Technical Skills",
	"SoftSkills":                 "Soft Skills",
	"DigitalLiteracyLevel":       "Digital Literacy Level",
	"ExperienceYears":            "Years of Experience",
	"PreferredInternshipType":    "Preferred Internship Type",
	"TransportationAvailability": "Transportation Availability",
	"InternetAccess":             "Internet Access",
	"ProfileVisibility":          "Profile Visibility",

	// Organization profile fields
	"OrganizationName":        "Organization Name",
	"Industry":                "Industry",
	"OrganizationType":        "Organization Type",
	"Location":                "Location",
	"Description":             "Description",
	"Website":                 "Website",
	"OffersRemoteInternships": "Offers Remote Internships",
	"InternshipLocationType":  "Internship Location Type",

	// Training fields
	"Title":                "Title",
	"RequiredSkills":       "Required Skills",
	"Duration":             "Duration",
	"Mode":                 "Mode",
	"CertificateAvailable": "Certificate Available",
	"Status":               "Status",

	// Document fields
	"FileName":    "File Name",
	"URL":         "File URL",
	"SizeInBytes": "File Size",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "gte":
		return fmt.Sprintf("%s must be %s or greater", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))

	case "email":
		return fmt.Sprintf("%s has an invalid email format", label)

	case "url":
		return fmt.Sprintf("%s has an invalid URL format", label)

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces, and common punctuation (. ' - /)", label)

	case "valid_phone":
		return fmt.Sprintf("%s has an invalid phone format (7-15 digits, with/without +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji or special symbols", label)

	case "max_current_year":
		return fmt.Sprintf("%s cannot be later than the current year", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
