package contextkeys

type contextKey string

const UserIDKey contextKey = "userID"
