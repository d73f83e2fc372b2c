// Package errors is the one errors import for shotgun code.
//
// It re-exports the cockroachdb/errors constructors and predicates,
// declares the sentinels that commands branch on, and carries exit
// statuses through [ExitError]. Commands return an ExitError; main
// turns it into an exit status with [ExitCode]:
//
//	if len(report.Failures()) > 0 {
//		return errors.NewUserError(errors.ErrValidationFailed, "fix the fields listed above")
//	}
//
// Status 1 ([ExitUser]) means the user can fix it. Status 2
// ([ExitSystem]) means something outside their input went wrong,
// and is also what unclassified errors get.
package errors
