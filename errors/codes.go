package errors

// ErrorCode identifies an application error category.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK               ErrorCode = 0
	ErrorCode_INTERNAL              ErrorCode = 1
	ErrorCode_INVALID_PAYLOAD       ErrorCode = 2
	ErrorCode_MISSING_TRANSCRIPT    ErrorCode = 100
	ErrorCode_EMPTY_TRANSCRIPT      ErrorCode = 101
	ErrorCode_SUMMARY_FAILED        ErrorCode = 102
	ErrorCode_INVALID_SHARE_REQUEST ErrorCode = 200
	ErrorCode_DELIVERY_FAILED       ErrorCode = 201
	ErrorCode_MAILER_MISCONFIGURED  ErrorCode = 202
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:               "HTTP_OK",
	ErrorCode_INTERNAL:              "INTERNAL",
	ErrorCode_INVALID_PAYLOAD:       "INVALID_PAYLOAD",
	ErrorCode_MISSING_TRANSCRIPT:    "MISSING_TRANSCRIPT",
	ErrorCode_EMPTY_TRANSCRIPT:      "EMPTY_TRANSCRIPT",
	ErrorCode_SUMMARY_FAILED:        "SUMMARY_FAILED",
	ErrorCode_INVALID_SHARE_REQUEST: "INVALID_SHARE_REQUEST",
	ErrorCode_DELIVERY_FAILED:       "DELIVERY_FAILED",
	ErrorCode_MAILER_MISCONFIGURED:  "MAILER_MISCONFIGURED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
