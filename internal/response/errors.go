package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrMissingCredentials ErrCode = "MISSING_CREDENTIALS"
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrCurrentCredentials ErrCode = "INVALID_CURRENT_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrRequiredFields ErrCode = "REQUIRED_FIELDS"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrSeminarCount   ErrCode = "SEMINAR_COUNT"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrStudentImageRequired ErrCode = "STUDENT_IMAGE_REQUIRED"
	ErrUnsupportedFile      ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge         ErrCode = "FILE_TOO_LARGE"
	ErrUploadFailed         ErrCode = "UPLOAD_FAILED"
	ErrCertificateUpload    ErrCode = "CERTIFICATE_UPLOAD_FAILED"
	ErrStudentImageUpload   ErrCode = "STUDENT_IMAGE_UPLOAD_FAILED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal     ErrCode = "INTERNAL_ERROR"
	ErrUpdateFailed ErrCode = "UPDATE_FAILED"
)

// GetMessage returns a human-readable message for a given error code.
// Guard failures deliberately share one message.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrMissingCredentials:
		return "Missing credentials"
	case ErrInvalidCredentials:
		return "Invalid credentials"
	case ErrCurrentCredentials:
		return "Invalid current credentials"
	case ErrTokenRequired, ErrTokenInvalid, ErrTokenExpired:
		return "Unauthorized"

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "সব ফিল্ড পূরণ করতে হবে"
	case ErrRequiredFields:
		return "সব প্রয়োজনীয় তথ্য প্রদান করুন"
	case ErrInvalidID:
		return "ID is required"
	case ErrInvalidPayload:
		return "অনুরোধের তথ্য সঠিক নয়"
	case ErrSeminarCount:
		return "ঠিক দুটি সেমিনারের তথ্য প্রদান করুন"

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Not found"
	case ErrConflict:
		return "এই ইউজারনেম ইতিমধ্যে ব্যবহৃত হচ্ছে"

	// ─── Media ─────────────────────────────────────────────────────────
	case ErrStudentImageRequired:
		return "ছাত্রের ছবি আপলোড করুন"
	case ErrUnsupportedFile:
		return "শুধুমাত্র ছবি ফাইল আপলোড করা যাবে"
	case ErrFileTooLarge:
		return "ছবির সাইজ ৫MB এর বেশি হতে পারবে না"
	case ErrUploadFailed:
		return "ছবি আপলোড করতে সমস্যা হয়েছে"
	case ErrCertificateUpload:
		return "সার্টিফিকেট ছবি আপলোড করতে সমস্যা হয়েছে"
	case ErrStudentImageUpload:
		return "ছাত্রের ছবি আপলোড করতে সমস্যা হয়েছে"

	// ─── Server ────────────────────────────────────────────────────────
	case ErrUpdateFailed:
		return "আপডেট করতে সমস্যা হয়েছে"
	case ErrInternal:
		return "Something went wrong"
	default:
		return "Something went wrong"
	}
}
