// Command ioregctl inspects I/O Kit registry entries and the DVFS tables they
// carry.
package main

func main() {
	execute()
}
