// Package services contains the core business logic of the vocalise CLI.
// Services implement the driving ports and depend only on driven port
// interfaces, never on concrete adapters.
package services
