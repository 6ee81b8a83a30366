/*
Package status records what a regroup run did and renders it for people.

	+-------------+
	|   Report    |
	|  (Groups)   |
	+------+------+
	       |
	+------+------+
	|  Transfers  |
	|  (Outcome)  |
	+-------------+

🎯 Purpose:
- Tracks one Transfer per planned file, grouped like the pattern list
- Renders the group listing for the dry run (text, tree, yaml, json)
- Formats single transfers and the final summary for the console

🔄 Flow:
1. The operation package starts a Group per pattern
2. Each transfer (or planned transfer in a dry run) is tracked with its Outcome
3. The CLI renders the Report or prints its summary

📝 Notes:
The text format is the historical "Group N:" listing with one tab-indented
target per line. Scripts should prefer yaml or json.
*/
package status
