// Package user holds marketplace accounts as seen by administration. Accounts are
// registered by the identity collaborator; this service only lists and removes them.
package user
