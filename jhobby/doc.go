// Package jhobby provides an implementation of John Hobby's spline
// interpolation algorithm for open MetaFont-like paths.
/*

Spline interpolation by Hobby's algorithm results in aesthetically pleasing
curves through a sequence of knots, superior to "normal" spline
interpolation. The primary source of information for "Hobby-splines" is:

   Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
   Computer Science Dept. Stanford University
   Report No. STAN-CS-85-1047, Jan 1985
   http://i.stanford.edu/pub/cstr/reports/cs/tr/85/1047/CS-TR-85-1047.pdf

The practical algorithm is explained in

   Computers & Typesetting, Vol. B & D.
   http://www-cs-faculty.stanford.edu/~knuth/abcde.html

The notation sticks closely to the original code in MetaFont.

Usage

Package bezfit uses this package to interpolate a reduced list of samples
of an easing function with cubic Bézier segments. Paths are always open:
the first and the last knot carry a curl, every join carries a tension.
In the MetaFont/MetaPost DSL such a path reads

   (1,1){curl 1}..(2,2)..tension 1.2..(3,1){curl 1}

and is built like this (package qualifiers omitted):

   path := Through(P(1,1), P(2,2), P(3,1)).Tension(1, 1.2)
   controls, err := FindPathControls(path)

For the common case of neutral curls and tensions there is a shortcut:

   controls, err := FindControls([]Pair{P(1,1), P(2,2), P(3,1)})

which for tension 1 returns

  (1,1) .. controls (1.0000,1.5523) and (1.4477,2.0000)
   .. (2,2) .. controls (2.5523,2.0000) and (3.0000,1.5523)
   .. (3,1)

Caveats

Explicit directions at knots and cyclic paths are not supported, as
interpolating a function graph never needs them.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package jhobby
