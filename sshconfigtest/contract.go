// Package sshconfigtest provides a contract test suite for sshconfig
// resolvers running on top of an arbitrary afero file system.
package sshconfigtest

// AllContracts returns all test cases for the contract test suite.
func AllContracts() []TestCase {
	const initialCapacity = 24

	contracts := make([]TestCase, 0, initialCapacity)

	contracts = append(contracts, patternContracts()...)
	contracts = append(contracts, precedenceContracts()...)
	contracts = append(contracts, listContracts()...)
	contracts = append(contracts, parsingContracts()...)
	contracts = append(contracts, fileContracts()...)

	return contracts
}
