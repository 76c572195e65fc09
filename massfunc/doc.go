// Package massfunc models probability mass functions over a finite
// possibility space and credal sets, finite sets of such functions read as
// the extreme points of an uncertainty model.
package massfunc
