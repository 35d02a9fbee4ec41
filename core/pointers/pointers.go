package pointers

// SafeString returns the value from ptr or "" if the pointer is nil
func SafeString(ptr *string) string {
	if ptr != nil {
		return *ptr
	}
	return ""
}

// StringPtr returns a pointer to the string passed as parameter
func StringPtr(str string) *string {
	return &str
}

// StringPtrOrEmpty returns the passed pointer or a pointer to the empty string if str is nil
func StringPtrOrEmpty(str *string) *string {
	if str == nil {
		return StringPtr("")
	}
	return str
}
