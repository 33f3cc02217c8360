package database

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
)

// Kind groups database failures by cause.
type Kind int

const (
	KindUnknown Kind = iota
	KindConnectivity
	KindConstraint
	KindStatement
)

func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "connectivity"
	case KindConstraint:
		return "constraint"
	case KindStatement:
		return "statement"
	default:
		return "unknown"
	}
}

// DataAccessError is returned by every repository operation that fails to
// talk to the database. It is local to the one call.
type DataAccessError struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %s failure: %v", e.Op, e.Kind, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func newDataAccessError(op string, err error) error {
	var dae *DataAccessError
	if errors.As(err, &dae) {
		return err
	}
	return &DataAccessError{Op: op, Kind: classify(err), Err: err}
}

// classify maps SQLSTATE classes and transport errors to a Kind.
func classify(err error) Kind {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08":
			return KindConnectivity
		case "23":
			return KindConstraint
		case "42":
			return KindStatement
		}
		return KindUnknown
	}

	var netErr *net.OpError
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return KindConnectivity
	}
	return KindUnknown
}

// IsConstraintViolation reports whether err was caused by an integrity constraint.
func IsConstraintViolation(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae) && dae.Kind == KindConstraint
}
