// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting drives the per-session voting state machine.

# States

	InProgress  >=1 unanswered comparison
	Completed   0 unanswered comparisons and >=1 comparison total

SubmitVote is the only transition into Completed: after recording a winner it
recounts the session's unanswered comparisons in the same transaction and
flips is_completed when the count reaches zero. UndoLastVote and ResetVotes
always transition back to InProgress, because both necessarily leave at least
one comparison unanswered.

A session with zero comparisons is never Completed. The engine validates that
a submitted winner is one of the comparison's two items; the store does not
re-check this.

# Failure semantics

Unknown session or comparison ids surface as the store's not-found errors.
Undo with nothing to undo is a no-op. Storage failures roll the whole
transaction back and propagate unmodified.
*/
package voting
