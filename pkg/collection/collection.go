// Package collection holds generic slice helpers shared by models and
// repositories.
//
//	ids := collection.Unique(collection.Map(orders, func(o models.Order) uint { return o.VenueID }))
//	byID := collection.KeyBy(users, func(u models.User) string { return u.UserID })
package collection

// Map applies fn to every element of s, keeping order and length.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Unique drops repeated elements, keeping first occurrences in order.
// The result is never nil.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// KeyBy indexes s by fn. On duplicate keys the last element wins.
func KeyBy[T any, K comparable](s []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(s))
	for _, v := range s {
		out[fn(v)] = v
	}
	return out
}
