/*
Package operation implements the mutating half of regroup.

	+-------------+
	|   Groups    |
	| (classify)  |
	+------+------+
	       |
	+------+------+
	| Directories |
	| (MkdirAll)  |
	+------+------+
	       |
	+------+------+
	|  Transfers  |
	| (copy/move) |
	+-------------+

🎯 Purpose:
- Creates every group folder and nested directory before the first transfer
- Copies files, or moves them with a copy and remove fallback
- Records each transfer in a status.Report

🔄 Flow:
1. Group by group, in pattern order
2. EnsureDirectories requests each distinct parent once
3. Each entry is copied or moved from its scanned source to its target
4. The first error aborts the run

⚡ Move semantics:
A move first tries a rename. Any rename error (not only cross-device ones)
triggers a copy followed by removal of the source. If the copy succeeds but
the removal fails the file exists in both places and the run stops with an
error naming the source.

🤝 Interfaces:
- fileops.Handler: all mutations, swapped for a recorder in tests
- log.Logger: optional console lines per transfer

🔍 Example:

	op, err := operation.NewTransferOperation(operation.Options{
		Handler: fileops.NewOS(),
		Output:  "out",
		Prefix:  "g",
	})
	report, err := operation.NewRunner(&logger).Run(ctx, op, groups)
*/
package operation
