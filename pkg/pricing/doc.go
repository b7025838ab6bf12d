// Package pricing defines the rental pricing policies.
//
// A Policy converts a vehicle's hourly base rate and a rental duration into
// a total price. Four policies exist, one per billing granularity:
//
//   - Hourly bills the base rate per hour.
//   - Daily bills 20 billable hours per day.
//   - Weekly bills 7 days per week with a 15% discount.
//   - Monthly bills 30 days per month with a 25% discount.
//
// Discounted totals stay exact: the combined multipliers are divisible by
// 100, so the division never truncates. Policies are stateless values and
// safe to share.
//
// Duration validation is the caller's job. Quote construction rejects
// durations below one before a policy ever runs.
package pricing
