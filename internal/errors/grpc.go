package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ClassifyGRPCError converts an error returned by the document bridge into a
// UIError. The status message is the command's own error text and is shown as-is.
func ClassifyGRPCError(err error) *UIError {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return ClassifyError(err)
	}

	details := fmt.Sprintf("gRPC: %s - %s", st.Code(), st.Message())

	switch st.Code() {
	case codes.Unavailable:
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Bridge Unavailable",
			Message:  "The gradebook process is not responding.",
			Recovery: []string{"Check that gradebook is running", "Verify GRADEBOOK_BRIDGE_ADDR"},
			Details:  details,
		}

	case codes.DeadlineExceeded:
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The gradebook process took too long to respond.",
			Recovery: []string{"Try again"},
			Details:  details,
		}

	case codes.Canceled:
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "Cancelled",
			Message:  "The request was cancelled.",
			Details:  details,
		}

	case codes.InvalidArgument, codes.Unimplemented:
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Invalid Command",
			Message:  st.Message(),
			Details:  details,
		}

	case codes.Internal:
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Could Not Access Data",
			Message:  st.Message(),
			Recovery: []string{"Try again", "Check free disk space"},
			Details:  details,
		}
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  st.Message(),
		Recovery: []string{"Try again"},
		Details:  details,
	}
}
