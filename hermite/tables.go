package hermite

// airyRoots holds the first 11 roots of the Airy function Ai on the negative
// real axis, correctly rounded to double precision
// (https://mathworld.wolfram.com/AiryFunctionZeros.html).
//
// The initial-guess generator substitutes the first 10 of these for the
// asymptotic root approximation, which is least accurate for the lowest
// roots.
var airyRoots = [11]float64{
	-2.338107410459767,
	-4.08794944413097,
	-5.520559828095551,
	-6.786708090071759,
	-7.944133587120853,
	-9.022650853340981,
	-10.04017434155809,
	-11.00852430373326,
	-11.93601556323626,
	-12.828776752865757,
	-13.69148903521072,
}
