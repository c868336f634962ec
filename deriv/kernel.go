package deriv

// PowerKernel returns the non-regularized operator values (i·kx)^order,
// (i·ky)^order and k^order for one wavenumber bin, where k = |(kx, ky)|.
func PowerKernel(order int, kx, ky, k float64) (gx, gy complex128, gz float64) {
	ix := complex(0, kx)
	iy := complex(0, ky)
	gx, gy, gz = ix, iy, k
	for range order - 1 {
		gx *= ix
		gy *= iy
		gz *= k
	}
	return gx, gy, gz
}

// RegularizedKernel returns the Tikhonov-damped first-derivative operator
// values i·kx/(1+α·kx²), i·ky/(1+α·ky²) and k/(1+α·k²) for one bin.
// With alpha == 0 the values equal PowerKernel(1, kx, ky, k) exactly.
func RegularizedKernel(alpha, kx, ky, k float64) (gx, gy complex128, gz float64) {
	gx = complex(0, kx/(1+alpha*kx*kx))
	gy = complex(0, ky/(1+alpha*ky*ky))
	gz = k / (1 + alpha*k*k)
	return gx, gy, gz
}
