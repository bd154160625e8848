// Package interview collects an order line from the operator. All terminal
// I/O goes through PromptDriver; the default driver is backed by survey and
// tests script answers with a stub.
package interview
