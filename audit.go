package tellerxgo

import (
	"fmt"
	"os"
	"time"
)

const auditTimeLayout = "2006-01-02 15:04:05"

type Auditor interface {
	Record(name string, args []any, kwargs map[string]any, result any) error
}

// FileAuditor appends one line per recorded action to the file at Path. The file is
// opened and closed around every write.
type FileAuditor struct {
	Path  string
	Clock Clock
}

var (
	_ Auditor = (*FileAuditor)(nil)
)

func NewFileAuditor(path string, clock Clock) *FileAuditor {
	return &FileAuditor{
		Path:  path,
		Clock: clock,
	}
}

func (a *FileAuditor) Record(name string, args []any, kwargs map[string]any, result any) error {
	fl, err := os.OpenFile(a.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer fl.Close()

	_, err = fmt.Fprintln(fl, FormatAuditLine(a.Clock.Now(), name, args, kwargs, result))
	return err
}

// FormatAuditLine builds a single audit entry, stamped in UTC.
func FormatAuditLine(at time.Time, name string, args []any, kwargs map[string]any, result any) string {
	return fmt.Sprintf("[%s] Function '%s' executed with arguments %+v and %+v. Returned %v",
		at.UTC().Format(auditTimeLayout), name, args, kwargs, result)
}
