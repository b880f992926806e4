/*
Package financesdk is a Go client for the finance tracker HTTP API.

Create a Client for public endpoints, then log in to get a Session for
everything that needs an authenticated user:

	client := financesdk.NewClient("http://localhost:8080")

	if _, err := client.Register(ctx, "alice", "0123456789", "0123456789"); err != nil {
		return err
	}

	session, err := client.Login(ctx, "alice", "0123456789")
	if err != nil {
		return err
	}

	_, err = session.AddTransaction(ctx, financesdk.TransactionRequest{
		Date:     "2024-01-05",
		Amount:   decimal.NewFromInt(50),
		Category: "Food",
	})

	report, err := session.Report(ctx, financesdk.Filter{Start: "2024-01-01"})

# Filters

Filter.Categories follows the server's selection rules: nil means every
category present in the date range, while a non-nil empty slice selects
nothing at all.

# Sessions

Sessions carry a signed token with a fixed lifetime and are never refreshed.
Once Expired reports true, log in again. Signing out is simply discarding the
Session.

# Errors

Non-2xx responses come back as *APIError carrying the HTTP status and the
server's error code, so callers can match on Code:

	var apiErr *financesdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == financesdk.ErrorCodeInvalidCredentials {
		// wrong username or passcode
	}
*/
package financesdk
