// Package order describes a single purchase-order line request as collected
// from library staff: vendor and bibliographic fields, the receiving-note
// category selection and the extra data some categories require. It also
// owns the field validators shared by the interview and the merge engine.
package order
