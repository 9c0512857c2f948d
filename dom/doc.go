/*
Package dom provides the view of a content tree needed for styling.

Content trees are constructed elsewhere, usually by parsing HTML with
golang.org/x/net/html. Styling only ever reads a content tree: for
selector matching it needs an element's tag name, its ID and its set of
classes. Interface Element captures exactly this identity.

Styled trees reference content nodes without owning them. A content tree
must not be modified while a styled tree for it is in use.

Status

Early draft, API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom
