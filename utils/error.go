package utils

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrorRecordNotFound = errors.New("record not found")

type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintNotNull    ConstraintKind = "not_null"
)

// ConstraintError is a store-level constraint violation. Err is the driver's
// error, untouched; Constraint names the index, key or column when the driver
// reports one.
type ConstraintError struct {
	Kind       ConstraintKind
	Table      string
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	msg := fmt.Sprintf("%s constraint violated on %s", e.Kind, e.Table)
	if e.Constraint != "" {
		msg += " (" + e.Constraint + ")"
	}
	return msg + ": " + e.Err.Error()
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

func IsConstraintError(err error, kind ConstraintKind) bool {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

func IsUniqueViolation(err error) bool {
	return IsConstraintError(err, ConstraintUnique)
}

func IsForeignKeyViolation(err error) bool {
	return IsConstraintError(err, ConstraintForeignKey)
}

func IsNotNullViolation(err error) bool {
	return IsConstraintError(err, ConstraintNotNull)
}

// ValidationError is returned before any write when input fails its rules.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

func NewValidationError(field string, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

// mysql error numbers
const (
	mysqlDupEntry          = 1062
	mysqlRowIsReferenced   = 1451
	mysqlNoReferencedRow   = 1452
	mysqlRowIsReferenced2  = 1217
	mysqlNoReferencedRow2  = 1216
	mysqlBadNullError      = 1048
	mysqlNoDefaultForField = 1364
)

// sqlite extended result codes
const (
	sqliteConstraintForeignKey = 787
	sqliteConstraintNotNull    = 1299
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

var (
	mysqlKeyPattern        = regexp.MustCompile(`for key '([^']+)'`)
	mysqlConstraintPattern = regexp.MustCompile("CONSTRAINT `([^`]+)`")
	mysqlColumnPattern     = regexp.MustCompile(`Column '([^']+)'|Field '([^']+)'`)
	sqliteDetailPattern    = regexp.MustCompile(`(?:UNIQUE|NOT NULL) constraint failed: ([^\s(]+)`)
)

// ClassifyDBError wraps constraint violations in *ConstraintError and returns
// every other error (including nil) as is.
func ClassifyDBError(table string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return err
	}

	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDupEntry:
			return &ConstraintError{Kind: ConstraintUnique, Table: table, Constraint: firstSubmatch(mysqlKeyPattern, mysqlErr.Message), Err: err}
		case mysqlRowIsReferenced, mysqlNoReferencedRow, mysqlRowIsReferenced2, mysqlNoReferencedRow2:
			return &ConstraintError{Kind: ConstraintForeignKey, Table: table, Constraint: firstSubmatch(mysqlConstraintPattern, mysqlErr.Message), Err: err}
		case mysqlBadNullError, mysqlNoDefaultForField:
			return &ConstraintError{Kind: ConstraintNotNull, Table: table, Constraint: firstSubmatch(mysqlColumnPattern, mysqlErr.Message), Err: err}
		}
		return err
	}

	// glebarez/go-sqlite and modernc.org/sqlite both expose Code()
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		switch coded.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return &ConstraintError{Kind: ConstraintUnique, Table: table, Constraint: firstSubmatch(sqliteDetailPattern, err.Error()), Err: err}
		case sqliteConstraintForeignKey:
			return &ConstraintError{Kind: ConstraintForeignKey, Table: table, Err: err}
		case sqliteConstraintNotNull:
			return &ConstraintError{Kind: ConstraintNotNull, Table: table, Constraint: firstSubmatch(sqliteDetailPattern, err.Error()), Err: err}
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConstraintError{Kind: ConstraintUnique, Table: table, Err: err}
	}

	// drivers that only report text
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &ConstraintError{Kind: ConstraintUnique, Table: table, Constraint: firstSubmatch(sqliteDetailPattern, msg), Err: err}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &ConstraintError{Kind: ConstraintForeignKey, Table: table, Err: err}
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return &ConstraintError{Kind: ConstraintNotNull, Table: table, Constraint: firstSubmatch(sqliteDetailPattern, msg), Err: err}
	}
	return err
}

func firstSubmatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	for _, g := range m[min(1, len(m)):] {
		if g != "" {
			return g
		}
	}
	return ""
}
