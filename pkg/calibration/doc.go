// Package calibration recovers calibration values from a calibration document.
//
// Every line of the document hides a calibration value: the two-digit number made of the first and the last
// digit found on the line. Digits are either literal characters or, when spelled digits are recognised, the
// English words "one" to "nine". Spelled words may share letters ("eighthree" holds 8 then 3) and every one of
// them counts.
package calibration
