// Package runner sequences jobs against the external editor driver.
//
// Execution is strictly sequential: the editor is a singleton stateful
// resource, so no job starts while another's process is still running, and a
// lock file keeps concurrent photoflow invocations from sharing it. Each
// job's failure is absorbed into its result; the run always finishes with an
// ordered summary unless an infrastructure failure makes the remaining jobs
// meaningless. Cancellation stops dispatch after the job in flight and keeps
// the results accumulated so far.
package runner
