// File: sample.go
// Title: Markup Sample Document
// Description: Sample document used by the demo command and the viewer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package markup

// SampleDocument parses successfully but fails the analyzer: the last
// nested div is closed by </other>.
const SampleDocument = `<div>
        Testing this out
        <h1>
            This works!
            <div class='testing' anotherOne   ='this works!'>Sub element</div>
            <div/>
        </h1>
        <div>This works as well!</other>
    </div>`
