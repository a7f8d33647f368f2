package errors

// Convenience functions for common error patterns

// Config and input errors

func ConfigNotFound(path string) *SiteForgeError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func RecordFieldRequired(field string) *SiteForgeError {
	return New(CategoryValidation, SeverityFatal, "required business record field missing").
		WithContext("field", field)
}

func RecordLoadError(path string, cause error) *SiteForgeError {
	return Wrap(cause, CategoryValidation, SeverityFatal, "business record load failed").
		WithContext("path", path)
}

// Document model errors

func DuplicateID(id string) *SiteForgeError {
	return New(CategoryDocument, SeverityFatal, "duplicate id in document model").
		WithContext("id", id)
}

func UnknownVariant(name string) *SiteForgeError {
	return New(CategoryGenerate, SeverityFatal, "unknown template variant").
		WithContext("variant", name)
}

// Infrastructure errors

func WorkspaceError(operation string, cause error) *SiteForgeError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "workspace operation failed").
		WithContext("operation", operation)
}

func JournalError(operation string, cause error) *SiteForgeError {
	return Wrap(cause, CategoryDaemon, SeverityError, "mutation journal operation failed").
		WithContext("operation", operation)
}

func DaemonError(component string, cause error) *SiteForgeError {
	return Wrap(cause, CategoryDaemon, SeverityFatal, "daemon component failed").
		WithContext("component", component)
}
