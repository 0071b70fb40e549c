// Package inkbound parses Inkbound game logs into per-player combat statistics.
//
// This package allows you to:
//   - Parse a complete log file into a history of dives and combats
//   - Keep that history up to date while the game is still writing the log
//   - Stream individual events (hits, status effects, orb pickups) as they happen
//   - Build tools like damage meters and post-run summaries
//
// # Data Model
//
// A [DataLog] holds every dive seen in the log, newest first. Each [DiveLog]
// holds its combats, newest first, and both dives and combats carry a
// [PlayerStatList] keyed by player name. Damage dealt before the first
// combat of a dive counts toward the dive but toward no combat.
//
// Players are identified by the numeric entity handles the game logs.
// A handle is matched to a name and class as soon as the corresponding
// lines have been seen; events referencing a handle before that stay
// unresolved and are not credited to anyone.
//
// # Basic Usage
//
// To parse a finished log:
//
//	dl, err := inkbound.ParseFile(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if dive := dl.CurrentDive(); dive != nil {
//	    for _, name := range dive.Stats.Names() {
//	        fmt.Println(name, dive.Stats[name].TotalDamageDealt)
//	    }
//	}
//
// To follow a log the game is writing:
//
//	r, err := inkbound.NewLogReader(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	for range time.Tick(time.Second) {
//	    if r.Status() == inkbound.StatusErrored {
//	        _ = r.Reset()
//	        continue
//	    }
//	    snapshot := r.DataLog().Snapshot()
//	    // render snapshot
//	}
//
// To receive events one at a time, use a [Follower].
//
// # Platform Support
//
// The game writes its log to logfile.log under the Shiny Shoe/Inkbound
// LocalLow directory on Windows, or the same path inside the Proton prefix
// on Linux. The inkparse command finds it automatically.
//
// # Disclaimer
//
// This is an unofficial tool and is not affiliated with Shiny Shoe.
package inkbound
