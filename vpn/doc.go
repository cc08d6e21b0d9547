// Package vpn drives the Cisco Secure Client (AnyConnect) command-line
// program on behalf of the user.
//
// The package covers three concerns:
//
//   - Locating the client: CandidatePaths lists the well-known install
//     locations per platform and Locator probes them before falling back to
//     a PATH search.
//   - Detecting state: Client.Connected runs "<exec> status" and looks for
//     the "Connected" marker. A failing status command reads as disconnected.
//   - Scripting sessions: Client.Connect and Client.Disconnect write a fixed
//     transcript (see Script) to the client's interactive "-s" prompt and
//     then re-check status to decide whether the operation worked.
//
// # Transport
//
// All process handling sits behind the Transport interface. ExecTransport
// spawns real subprocesses; tests substitute a fake that replays canned
// status output.
//
// # Concurrency
//
// A Client runs one subprocess at a time and holds no state between calls.
// It is not meant for concurrent use.
package vpn
